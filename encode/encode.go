package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/keyfmt/format"
	"github.com/signadot/keyfmt/keymap"
)

type EncState struct {
	format      format.Format
	wire        bool
	lineNumbers bool

	Color func(ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

// EncodeValue encodes any value in a structured format; text is encoded as
// indented JSON.
func EncodeValue(v any, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsYAML() {
		return encodeYAML(v, w)
	}
	return encodeJSON(v, w, es)
}

// Record is one block of a Report. Start and End are 0-based line indices.
type Record struct {
	Start    int      `json:"start" yaml:"start"`
	End      int      `json:"end" yaml:"end"`
	Len      int      `json:"len" yaml:"len"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Bindings []string `json:"bindings" yaml:"bindings"`
	Lines    []string `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// Report lists the blocks of one Document and the start indices of its
// unterminated blocks.
type Report struct {
	File         string   `json:"file" yaml:"file"`
	Blocks       []Record `json:"blocks" yaml:"blocks"`
	Unterminated []int    `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`

	doc *keymap.Document
}

// NewReport builds a Report from the blocks of doc and the error returned
// by keymap.Blocks.
func NewReport(doc *keymap.Document, infos []keymap.BlockInfo, err error) *Report {
	r := &Report{File: doc.Name, Blocks: []Record{}, doc: doc}
	for i := range infos {
		info := &infos[i]
		r.Blocks = append(r.Blocks, Record{
			Start:    info.Start,
			End:      info.End,
			Len:      info.Len(),
			Label:    info.Label,
			Bindings: info.Bindings,
		})
	}
	for _, u := range keymap.Unterminated(err) {
		r.Unterminated = append(r.Unterminated, u.Start.I)
	}
	return r
}

// WithLines includes the text of each block in r.
func (r *Report) WithLines() *Report {
	for i := range r.Blocks {
		rec := &r.Blocks[i]
		rec.Lines = r.doc.Slice(rec.Start, rec.End)
	}
	return r
}

func EncodeReports(reports []*Report, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch {
	case es.format.IsJSON():
		return encodeJSON(reports, w, es)
	case es.format.IsYAML():
		return encodeYAML(reports, w)
	}
	for _, r := range reports {
		for i := range r.Blocks {
			if err := writeString(w, recordLine(r.File, &r.Blocks[i], es)); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeJSON(v any, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !es.wire {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func encodeYAML(v any, w io.Writer) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func lineRange(start, end int) string {
	if start == end {
		return strconv.Itoa(start + 1)
	}
	return strconv.Itoa(start+1) + "-" + strconv.Itoa(end+1)
}

func plural(n int, s string) string {
	if n == 1 {
		return "1 " + s
	}
	return strconv.Itoa(n) + " " + s + "s"
}

func recordLine(file string, rec *Record, es *EncState) string {
	res := es.color(FileColor, file) + ":" + es.color(RangeColor, lineRange(rec.Start, rec.End))
	if rec.Label != "" {
		res += " " + es.color(LabelColor, rec.Label)
	}
	return res + fmt.Sprintf(" (%s, %s)\n", plural(rec.Len, "line"), plural(len(rec.Bindings), "binding"))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
