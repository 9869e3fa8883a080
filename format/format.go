package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how reports are written.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var names = [...]string{
	TextFormat: "text",
	YAMLFormat: "yaml",
	JSONFormat: "json",
}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		name := names[f]
		if v == name || v == name[:1] {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrBadFormat, v, Names())
}

// Names lists the format names in preference order, "|" separated.
func Names() string {
	all := AllFormats()
	res := make([]string, len(all))
	for i, f := range all {
		res[i] = names[f]
	}
	return strings.Join(res, "|")
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(names[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat}
}
