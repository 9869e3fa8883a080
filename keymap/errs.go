package keymap

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated   = errors.New("unterminated bindings block")
	ErrMalformedInput = errors.New("malformed input")
	ErrBadUTF8        = fmt.Errorf("%w: bad utf8", ErrMalformedInput)
	ErrStartRange     = errors.New("start out of range")
)

// UnterminatedError reports an opening line with no closing line at or after
// it.
type UnterminatedError struct {
	Start *Pos
}

func (u *UnterminatedError) Unwrap() error {
	return ErrUnterminated
}

func (u *UnterminatedError) Error() string {
	return fmt.Sprintf("%s: %s (start index %d)", u.Start, ErrUnterminated, u.Start.I)
}

func startRangeErr(start, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrStartRange, start, n)
}
