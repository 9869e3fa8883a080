// Package eval evaluates block filter expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) over an
// [Env] and must produce a bool, for example
//
//	Len > 1 && has("&kp ESC")
//	matches("^(lower|raise)") || "&bootloader" in Bindings
package eval

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/keyfmt/debug"
	"github.com/signadot/keyfmt/keymap"
)

var ErrFilter = errors.New("filter error")

// Env is what a filter expression sees of a block.
type Env struct {
	Start    int
	End      int
	Len      int
	Label    string
	Bindings []string
}

func EnvOf(info *keymap.BlockInfo) *Env {
	return &Env{
		Start:    info.Start,
		End:      info.End,
		Len:      info.Len(),
		Label:    info.Label,
		Bindings: info.Bindings,
	}
}

// Filter is a compiled expression. It is not safe for concurrent use.
type Filter struct {
	src string
	prg *vm.Program
	cur *Env
	res map[string]*regexp.Regexp
}

func Compile(src string) (*Filter, error) {
	f := &Filter{src: src, cur: &Env{}, res: map[string]*regexp.Regexp{}}
	opts := append(f.exprOpts(), expr.Env(Env{}), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, err)
	}
	f.prg = prg
	return f, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(info *keymap.BlockInfo) (bool, error) {
	f.cur = EnvOf(info)
	res, err := expr.Run(f.prg, *f.cur)
	if err != nil {
		return false, fmt.Errorf("%w: %q on block at line %d: %w", ErrFilter, f.src, info.Start+1, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %d-%d: %v\n", f.src, info.Start, info.End, res)
	}
	return res.(bool), nil
}

// Apply returns the infos matching f. A nil Filter matches everything.
func (f *Filter) Apply(infos []keymap.BlockInfo) ([]keymap.BlockInfo, error) {
	if f == nil {
		return infos, nil
	}
	var res []keymap.BlockInfo
	for i := range infos {
		ok, err := f.Match(&infos[i])
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, infos[i])
		}
	}
	return res, nil
}
