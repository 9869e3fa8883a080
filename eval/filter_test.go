package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/keyfmt/keymap"
)

var infos = []keymap.BlockInfo{
	{
		Block:    keymap.Block{Start: 8, End: 11},
		Label:    "default_layer",
		Bindings: []string{"&kp ESC", "&kp Q"},
	},
	{
		Block:    keymap.Block{Start: 15, End: 15},
		Label:    "lower_layer",
		Bindings: []string{"&trans", "&bootloader"},
	},
	{
		Block:    keymap.Block{Start: 20, End: 20},
		Bindings: []string{"&none"},
	},
}

type filterTest struct {
	src  string
	want []int
}

var filterTests = []filterTest{
	{src: `true`, want: []int{8, 15, 20}},
	{src: `Len > 1`, want: []int{8}},
	{src: `has("&kp ESC")`, want: []int{8}},
	{src: `"&bootloader" in Bindings`, want: []int{15}},
	{src: `matches("_layer$")`, want: []int{8, 15}},
	{src: `Label == ""`, want: []int{20}},
	{src: `Start >= 15 && len(Bindings) == 1`, want: []int{20}},
	{src: `getenv("KEYFMT_EVAL_TEST") == "on" && End < 12`, want: []int{8}},
}

func TestApply(t *testing.T) {
	t.Setenv("KEYFMT_EVAL_TEST", "on")
	for _, tt := range filterTests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			res, err := f.Apply(infos)
			if err != nil {
				t.Fatal(err)
			}
			var got []int
			for _, info := range res {
				got = append(got, info.Start)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`Len +`, `Label`, `Nope > 1`, `has(1)`} {
		if _, err := Compile(src); !errors.Is(err, ErrFilter) {
			t.Errorf("%q: expected ErrFilter, got %v", src, err)
		}
	}
}

func TestRunError(t *testing.T) {
	f, err := Compile(`matches("(")`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Apply(infos); !errors.Is(err, ErrFilter) {
		t.Errorf("expected ErrFilter, got %v", err)
	}
}

func TestNilFilter(t *testing.T) {
	var f *Filter
	res, err := f.Apply(infos)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != len(infos) {
		t.Errorf("got %d infos, want %d", len(res), len(infos))
	}
}
