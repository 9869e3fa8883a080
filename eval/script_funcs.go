package eval

import (
	"os"
	"regexp"
	"slices"

	"github.com/expr-lang/expr"
)

func (f *Filter) exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("has", func(params ...any) (any, error) {
			return slices.Contains(f.cur.Bindings, params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("matches", func(params ...any) (any, error) {
			re, err := f.compileRE(params[0].(string))
			if err != nil {
				return nil, err
			}
			return re.MatchString(f.cur.Label), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func (f *Filter) compileRE(src string) (*regexp.Regexp, error) {
	if re, ok := f.res[src]; ok {
		return re, nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	f.res[src] = re
	return re, nil
}
