package keymap

import (
	"regexp"
	"strings"
)

// BlockInfo is a Block annotated with the node that encloses it and the
// bindings it lists.
type BlockInfo struct {
	Block    `yaml:",inline"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Bindings []string `json:"bindings" yaml:"bindings"`
}

func Info(doc *Document, b Block) BlockInfo {
	return BlockInfo{
		Block:    b,
		Label:    Label(doc, b),
		Bindings: Bindings(doc, b),
	}
}

func Infos(doc *Document, blocks []Block) []BlockInfo {
	res := make([]BlockInfo, 0, len(blocks))
	for _, b := range blocks {
		res = append(res, Info(doc, b))
	}
	return res
}

// Label returns the name of the devicetree node enclosing b, or "" when the
// nearest preceding node was already closed.
func Label(doc *Document, b Block) string {
	for i := b.Start - 1; i >= 0; i-- {
		line := strings.TrimSpace(stripLineComment(doc.lines[i]))
		if strings.HasSuffix(line, "};") {
			return ""
		}
		head, ok := strings.CutSuffix(line, "{")
		if !ok {
			continue
		}
		fields := strings.Fields(head)
		if len(fields) == 0 {
			return ""
		}
		name := fields[len(fields)-1]
		if j := strings.LastIndexByte(name, ':'); j >= 0 {
			name = name[j+1:]
		}
		return name
	}
	return ""
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	bindingList  = regexp.MustCompile(`<([^<>]*)>`)
)

// Bindings returns the `&` entries between the brackets of b, whitespace
// normalized, comments removed. A block holding several lists, as in
// `bindings = <&kp>, <&mo>;`, yields the entries of each list in order.
func Bindings(doc *Document, b Block) []string {
	parts := make([]string, 0, b.Len())
	for _, line := range doc.lines[b.Start : b.End+1] {
		parts = append(parts, stripLineComment(line))
	}
	body := blockComment.ReplaceAllString(strings.Join(parts, " "), " ")
	res := []string{}
	for _, m := range bindingList.FindAllStringSubmatch(body, -1) {
		for _, entry := range strings.Split(m[1], "&") {
			fields := strings.Fields(entry)
			if len(fields) == 0 {
				continue
			}
			res = append(res, "&"+strings.Join(fields, " "))
		}
	}
	return res
}

func stripLineComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}
