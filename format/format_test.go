package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		for _, name := range []string{f.String(), f.String()[:1]} {
			got, err := ParseFormat(name)
			if err != nil {
				t.Fatalf("%q: %v", name, err)
			}
			if got != f {
				t.Errorf("%q: got %s, want %s", name, got, f)
			}
		}
	}
	_, err := ParseFormat("toml")
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("expected ErrBadFormat, got %v", err)
	}
	if want := `bad format: "toml" (want one of text|yaml|json)`; err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if !f.IsJSON() || f.IsYAML() || f.IsText() {
		t.Errorf("got %s", f)
	}
	if err := f.UnmarshalText([]byte("xml")); err == nil {
		t.Error("expected error")
	}
	if s := Format(-1).String(); s != "<err: -1 is not a format>" {
		t.Errorf("got %q", s)
	}
	if s := Format(7).String(); s != "<err: 7 is not a format>" {
		t.Errorf("got %q", s)
	}
}

func TestNames(t *testing.T) {
	if got := Names(); got != "text|yaml|json" {
		t.Errorf("got %q", got)
	}
}
