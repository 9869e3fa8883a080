package keymap

import (
	"errors"
	"testing"
)

type scanTest struct {
	name         string
	lines        []string
	start        int
	end          int
	unterminated bool
}

var scanTests = []scanTest{
	{
		name:  "multi line",
		lines: []string{"bindings = <", "&kp A", ">;"},
		start: 0,
		end:   2,
	},
	{
		name:  "single line",
		lines: []string{"bindings = <&kp A>;"},
		start: 0,
		end:   0,
	},
	{
		name:         "unterminated",
		lines:        []string{"bindings = <", "&kp A"},
		start:        0,
		end:          -1,
		unterminated: true,
	},
	{
		name:  "stops at first close",
		lines: []string{"foo", "bindings = <", "bar>;", "baz"},
		start: 1,
		end:   2,
	},
	{
		name:  "first of several closes",
		lines: []string{"bindings = <", "&kp A", ">;", "bindings = <", ">;"},
		start: 0,
		end:   2,
	},
	{
		name:  "trailing space and cr",
		lines: []string{"  bindings = <", "    &kp A &kp B", "  >; \r"},
		start: 0,
		end:   2,
	},
	{
		name:  "close not at end of line",
		lines: []string{"bindings = <", ">; // done", ">;"},
		start: 0,
		end:   2,
	},
	{
		name:         "close before start is ignored",
		lines:        []string{">;", "bindings = <", "&kp A"},
		start:        1,
		end:          -1,
		unterminated: true,
	},
}

func TestScanEnd(t *testing.T) {
	for _, tt := range scanTests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromLines("test.keymap", tt.lines)
			end, err := ScanEnd(doc, tt.start)
			if tt.unterminated {
				if !errors.Is(err, ErrUnterminated) {
					t.Fatalf("expected ErrUnterminated, got %v", err)
				}
				var u *UnterminatedError
				if !errors.As(err, &u) {
					t.Fatalf("expected *UnterminatedError, got %T", err)
				}
				if u.Start.I != tt.start {
					t.Errorf("start index %d, want %d", u.Start.I, tt.start)
				}
				if end != -1 {
					t.Errorf("end %d for unterminated block, want -1", end)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if end != tt.end {
				t.Errorf("end %d, want %d", end, tt.end)
			}
		})
	}
}

func TestScanEndProperties(t *testing.T) {
	for _, tt := range scanTests {
		doc := FromLines("p.keymap", tt.lines)
		for start := range doc.Len() {
			end, err := ScanEnd(doc, start)
			if IsBlockClose(doc.Line(start)) {
				if err != nil || end != start {
					t.Errorf("%s/%d: closing start gave %d, %v", tt.name, start, end, err)
				}
				continue
			}
			if err != nil {
				for i := start; i < doc.Len(); i++ {
					if IsBlockClose(doc.Line(i)) {
						t.Errorf("%s/%d: unterminated but line %d closes", tt.name, start, i)
					}
				}
				continue
			}
			if end < start || !IsBlockClose(doc.Line(end)) {
				t.Errorf("%s/%d: bad end %d", tt.name, start, end)
			}
			for i := start; i < end; i++ {
				if IsBlockClose(doc.Line(i)) {
					t.Errorf("%s/%d: line %d closes before end %d", tt.name, start, i, end)
				}
			}
			again, _ := ScanEnd(doc, start)
			if again != end {
				t.Errorf("%s/%d: second scan gave %d, first %d", tt.name, start, again, end)
			}
		}
	}
}

func TestScanEndRange(t *testing.T) {
	doc := FromLines("r.keymap", []string{"bindings = <&kp A>;"})
	for _, start := range []int{-1, 1, 10} {
		end, err := ScanEnd(doc, start)
		if !errors.Is(err, ErrStartRange) {
			t.Errorf("start %d: expected ErrStartRange, got %v", start, err)
		}
		if end != -1 {
			t.Errorf("start %d: end %d, want -1", start, end)
		}
	}
	if _, err := ScanEnd(FromLines("empty", nil), 0); !errors.Is(err, ErrStartRange) {
		t.Errorf("empty document: expected ErrStartRange, got %v", err)
	}
}

func TestScan(t *testing.T) {
	doc := FromLines("s.keymap", []string{"x", "bindings = <", "&kp A", ">;"})
	b, err := Scan(doc, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b != (Block{Start: 1, End: 3}) {
		t.Errorf("got %+v", b)
	}
	if b.Len() != 3 {
		t.Errorf("len %d, want 3", b.Len())
	}
}

func TestUnterminatedErrorMessage(t *testing.T) {
	doc := FromLines("adv360.keymap", []string{"", "", "bindings = <", "&kp A"})
	_, err := ScanEnd(doc, 2)
	want := "adv360.keymap:3: unterminated bindings block (start index 2)"
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %q", err, want)
	}
}
