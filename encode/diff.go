package encode

import (
	"io"
	"strconv"

	"github.com/signadot/keyfmt/keymap"
	"github.com/signadot/keyfmt/libdiff"
)

type diffLine struct {
	Op   string `json:"op" yaml:"op"`
	Text string `json:"text" yaml:"text"`
}

type diffRecord struct {
	Key   string     `json:"key" yaml:"key"`
	From  *[2]int    `json:"from,omitempty" yaml:"from,omitempty"`
	To    *[2]int    `json:"to,omitempty" yaml:"to,omitempty"`
	Lines []diffLine `json:"lines" yaml:"lines"`
}

// EncodeDiffs writes block diffs between the files named from and to.
func EncodeDiffs(from, to string, diffs []*libdiff.BlockDiff, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if !es.format.IsText() {
		recs := make([]diffRecord, 0, len(diffs))
		for _, d := range diffs {
			rec := diffRecord{Key: d.Key, Lines: []diffLine{}}
			if d.From != nil {
				rec.From = &[2]int{d.From.Start, d.From.End}
			}
			if d.To != nil {
				rec.To = &[2]int{d.To.Start, d.To.End}
			}
			for _, l := range d.Lines {
				rec.Lines = append(rec.Lines, diffLine{Op: l.Op.String(), Text: l.Text})
			}
			recs = append(recs, rec)
		}
		if es.format.IsJSON() {
			return encodeJSON(recs, w, es)
		}
		return encodeYAML(recs, w)
	}
	if len(diffs) == 0 {
		return nil
	}
	head := es.color(DeleteColor, "--- "+from) + "\n" + es.color(InsertColor, "+++ "+to) + "\n"
	if err := writeString(w, head); err != nil {
		return err
	}
	for _, d := range diffs {
		if err := writeString(w, hunkHeader(d, es)); err != nil {
			return err
		}
		for _, l := range d.Lines {
			text := l.Op.Prefix() + l.Text
			switch l.Op {
			case libdiff.Insert:
				text = es.color(InsertColor, text)
			case libdiff.Delete:
				text = es.color(DeleteColor, text)
			}
			if err := writeString(w, text+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func hunkHeader(d *libdiff.BlockDiff, es *EncState) string {
	res := "@@ "
	if d.From != nil {
		res += "-" + hunkRange(d.From.Block) + " "
	}
	if d.To != nil {
		res += "+" + hunkRange(d.To.Block) + " "
	}
	res = es.color(RangeColor, res+"@@") + " " + es.color(LabelColor, d.Key)
	switch {
	case d.From == nil:
		res += " (added)"
	case d.To == nil:
		res += " (removed)"
	}
	return res + "\n"
}

func hunkRange(b keymap.Block) string {
	return strconv.Itoa(b.Start+1) + "," + strconv.Itoa(b.Len())
}
