package keymap

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/signadot/keyfmt/debug"
)

var bindingsOpen = regexp.MustCompile(`bindings += +<`)

// IsBindingsOpen reports whether line contains `bindings`, spaces, `=`,
// spaces and then `<`.
func IsBindingsOpen(line string) bool {
	res := bindingsOpen.MatchString(line)
	if debug.Classify() {
		debug.Logf("classify %q open=%t\n", line, res)
	}
	return res
}

// IsBlockClose reports whether line ends with `>;` once trailing space is
// trimmed.
func IsBlockClose(line string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(line, unicode.IsSpace), ">;")
}
