package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FileColor ColorAttr = iota
	RangeColor
	LabelColor
	BindingColor
	OpenColor
	CloseColor
	LineNumColor
	InsertColor
	DeleteColor
	ErrorColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[FileColor] = sprintf(color.New(color.Bold))
	colors.Map[RangeColor] = sprintf(color.RGB(128, 216, 236))
	colors.Map[LabelColor] = sprintf(color.RGB(196, 96, 16))
	colors.Map[BindingColor] = sprintf(color.RGB(8, 196, 16))
	colors.Map[OpenColor] = sprintf(color.RGB(128, 168, 196))
	colors.Map[CloseColor] = sprintf(color.RGB(196, 128, 128))
	colors.Map[LineNumColor] = sprintf(color.RGB(96, 96, 96))
	colors.Map[InsertColor] = sprintf(color.New(color.FgGreen))
	colors.Map[DeleteColor] = sprintf(color.New(color.FgRed))
	colors.Map[ErrorColor] = sprintf(color.New(color.FgRed, color.Bold))
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// sprintf colors regardless of whether stdout is a terminal; callers decide
// whether to use colors at all.
func sprintf(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
