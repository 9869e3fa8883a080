package keymap

import (
	"errors"

	"github.com/signadot/keyfmt/debug"
)

// Walk classifies every line of doc in order and scans each opening line,
// passing the Block or the scan error to fn. A non-nil error from fn stops
// the walk and is returned.
func Walk(doc *Document, fn func(Block, error) error) error {
	for i := 0; i < doc.Len(); i++ {
		if !IsBindingsOpen(doc.lines[i]) {
			continue
		}
		b, err := Scan(doc, i)
		if debug.Walk() {
			debug.Logf("walk %s: block=%v err=%v\n", doc.Pos(i), b, err)
		}
		if err := fn(b, err); err != nil {
			return err
		}
	}
	return nil
}

// Blocks returns every terminated block of doc. Unterminated blocks do not
// stop the pass; they are joined into the returned error.
func Blocks(doc *Document) ([]Block, error) {
	var (
		res  []Block
		errs []error
	)
	// the callback never fails, so neither does Walk
	_ = Walk(doc, func(b Block, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		res = append(res, b)
		return nil
	})
	return res, errors.Join(errs...)
}

// Unterminated returns the UnterminatedErrors contained in err, which may be
// a single error or the result of Blocks.
func Unterminated(err error) []*UnterminatedError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var res []*UnterminatedError
		for _, e := range joined.Unwrap() {
			res = append(res, Unterminated(e)...)
		}
		return res
	}
	var u *UnterminatedError
	if errors.As(err, &u) {
		return []*UnterminatedError{u}
	}
	return nil
}
