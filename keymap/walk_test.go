package keymap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const adv360 = `#include <behaviors.dtsi>
#include <dt-bindings/zmk/keys.h>

/ {
    keymap {
        compatible = "zmk,keymap";

        default_layer {
            bindings = <
                &kp EQUAL &kp N1 &kp N2
                &kp TAB   &kp Q  &kp W
            >;
        };

        lower: lower_layer {
            bindings = <&trans &mo 1 &bt BT_CLR>;
        };

        keypad {
            // numbers
            bindings = <
                &kp KP_N7 /* seven */ &kp KP_N8
                &kp KP_N9 // nine
            >;
        };
    };
};
`

func mustDoc(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := FromBytes("adv360.keymap", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestBlocks(t *testing.T) {
	doc := mustDoc(t, adv360)
	blocks, err := Blocks(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []Block{
		{Start: 8, End: 11},
		{Start: 15, End: 15},
		{Start: 20, End: 23},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	again, err := Blocks(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(blocks, again); diff != "" {
		t.Errorf("second pass differs (-first +second)\n%s", diff)
	}
}

func TestBlocksUnterminated(t *testing.T) {
	doc := FromLines("bad.keymap", []string{
		"bindings = <&kp A>;",
		"bindings = <",
		"&kp B",
	})
	blocks, err := Blocks(doc)
	if diff := cmp.Diff([]Block{{Start: 0, End: 0}}, blocks); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("expected ErrUnterminated, got %v", err)
	}
	us := Unterminated(err)
	if len(us) != 1 || us[0].Start.I != 1 {
		t.Errorf("unterminated %v", us)
	}
}

func TestBlocksOpenInsideBlock(t *testing.T) {
	doc := FromLines("nested.keymap", []string{
		"bindings = <",
		"bindings = <",
		">;",
	})
	blocks, err := Blocks(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []Block{{Start: 0, End: 2}, {Start: 1, End: 2}}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestWalkStops(t *testing.T) {
	doc := FromLines("w.keymap", []string{
		"bindings = <",
		"bindings = <&kp A>;",
		"bindings = <",
	})
	stop := errors.New("stop")
	var seen []int
	err := Walk(doc, func(b Block, err error) error {
		if err != nil {
			return stop
		}
		seen = append(seen, b.Start)
		return nil
	})
	if err != stop {
		t.Errorf("expected stop, got %v", err)
	}
	if diff := cmp.Diff([]int{0, 1}, seen); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestUnterminatedMany(t *testing.T) {
	doc := FromLines("m.keymap", []string{"bindings = <", "x", "bindings = <"})
	_, err := Blocks(doc)
	var starts []int
	for _, u := range Unterminated(err) {
		starts = append(starts, u.Start.I)
	}
	if diff := cmp.Diff([]int{0, 2}, starts); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if Unterminated(nil) != nil {
		t.Error("expected nil for nil error")
	}
	if Unterminated(errors.New("other")) != nil {
		t.Error("expected nil for unrelated error")
	}
}
