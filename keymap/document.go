package keymap

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Document is the immutable line sequence of one keymap file.
type Document struct {
	Name  string
	lines []string
}

// FromLines makes a Document from lines already split. The slice is copied.
func FromLines(name string, lines []string) *Document {
	return &Document{Name: name, lines: append([]string(nil), lines...)}
}

// FromBytes splits d on '\n'. A final newline does not start an extra line.
func FromBytes(name string, d []byte) (*Document, error) {
	if !utf8.Valid(d) {
		line := bytes.Count(d[:badUTF8Offset(d)], []byte{'\n'})
		return nil, fmt.Errorf("%w in %s at line %d", ErrBadUTF8, name, line+1)
	}
	if len(d) == 0 {
		return &Document{Name: name}, nil
	}
	s := strings.TrimSuffix(string(d), "\n")
	return &Document{Name: name, lines: strings.Split(s, "\n")}, nil
}

func badUTF8Offset(d []byte) int {
	i := 0
	for i < len(d) {
		r, n := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return i
}

// Read reads all of r into a Document named name.
func Read(name string, r io.Reader) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrMalformedInput, name, err)
	}
	return FromBytes(name, d)
}

// ReadFile reads the keymap at path.
func ReadFile(path string) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return FromBytes(path, d)
}

func (d *Document) Len() int {
	return len(d.lines)
}

func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Slice returns lines start through end inclusive.
func (d *Document) Slice(start, end int) []string {
	return append([]string(nil), d.lines[start:end+1]...)
}

func (d *Document) Pos(i int) *Pos {
	return &Pos{I: i, D: d}
}
