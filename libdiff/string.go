package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line diff.
type Line struct {
	Op   Op
	Text string
}

// DiffLines diffs from and to line by line. The result is nil when they are
// equal.
func DiffLines(from, to []string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var (
		res     []Line
		changed bool
	)
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
			changed = true
		case diffpatch.DiffDelete:
			op = Delete
			changed = true
		case diffpatch.DiffEqual:
			op = Equal
		}
		for _, text := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	if !changed {
		return nil
	}
	return res
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
