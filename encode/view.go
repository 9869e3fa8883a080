package encode

import (
	"fmt"
	"io"
)

// EncodeView writes the text of every block in the reports. Non text
// formats encode the reports with their lines.
func EncodeView(reports []*Report, w io.Writer, opts ...EncodeOption) error {
	if !FormatFromOpts(opts...).IsText() {
		for _, r := range reports {
			r.WithLines()
		}
		return EncodeReports(reports, w, opts...)
	}
	es := newEncState(opts)
	first := true
	for _, r := range reports {
		for i := range r.Blocks {
			rec := &r.Blocks[i]
			if !first {
				if err := writeString(w, "\n"); err != nil {
					return err
				}
			}
			first = false
			if err := viewRecord(r, rec, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewRecord(r *Report, rec *Record, w io.Writer, es *EncState) error {
	header := "// " + es.color(FileColor, r.File) + ":" + es.color(RangeColor, lineRange(rec.Start, rec.End))
	if rec.Label != "" {
		header += " " + es.color(LabelColor, rec.Label)
	}
	if err := writeString(w, header+"\n"); err != nil {
		return err
	}
	for i := rec.Start; i <= rec.End; i++ {
		attr := BindingColor
		switch i {
		case rec.Start:
			attr = OpenColor
		case rec.End:
			attr = CloseColor
		}
		line := es.color(attr, r.doc.Line(i))
		if es.lineNumbers {
			line = es.color(LineNumColor, fmt.Sprintf("%5d", i+1)) + " | " + line
		}
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
