// Package debug gates diagnostic tracing behind KEYFMT_DEBUG_* environment
// variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Scan     bool
	Walk     bool
	Eval     bool
	Diff     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("KEYFMT_DEBUG_CLASSIFY")
	d.Scan = boolEnv("KEYFMT_DEBUG_SCAN")
	d.Walk = boolEnv("KEYFMT_DEBUG_WALK")
	d.Eval = boolEnv("KEYFMT_DEBUG_EVAL")
	d.Diff = boolEnv("KEYFMT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Classify() bool {
	return d.Classify
}
func Scan() bool {
	return d.Scan
}
func Walk() bool {
	return d.Walk
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
