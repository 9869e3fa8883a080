package encode

import (
	"fmt"
	"io"

	"github.com/signadot/keyfmt/keymap"
)

// EncodeCheck writes "<file>: ok" for a report without unterminated blocks
// and one line per unterminated block otherwise. Non text formats encode the
// reports.
func EncodeCheck(reports []*Report, w io.Writer, opts ...EncodeOption) error {
	if !FormatFromOpts(opts...).IsText() {
		return EncodeReports(reports, w, opts...)
	}
	es := newEncState(opts)
	for _, r := range reports {
		if len(r.Unterminated) == 0 {
			if err := writeString(w, es.color(FileColor, r.File)+": ok\n"); err != nil {
				return err
			}
			continue
		}
		for _, start := range r.Unterminated {
			msg := fmt.Sprintf("%s:%d: %s (start index %d)\n",
				es.color(FileColor, r.File), start+1,
				es.color(ErrorColor, keymap.ErrUnterminated.Error()), start)
			if err := writeString(w, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
