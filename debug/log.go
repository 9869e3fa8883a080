package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

type JSON struct{ V any }

func (j JSON) String() string {
	d, err := json.MarshalIndent(j.V, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", j.V)
	}
	return string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, []string, json.Number:
			args[i] = JSON{V: a}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v to the debug output as a line of JSON, or with %v when v
// does not marshal.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
