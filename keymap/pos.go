package keymap

import (
	"fmt"
	"strconv"
)

// Pos is a 0-based line index in a named Document.
type Pos struct {
	I int
	D *Document
}

func (p *Pos) Line() int {
	return p.I + 1
}

func (p *Pos) Text() string {
	return p.D.Line(p.I)
}

func (p *Pos) String() string {
	name := "-"
	if p.D != nil && p.D.Name != "" {
		name = p.D.Name
	}
	return name + ":" + strconv.Itoa(p.I+1)
}

// Sample returns the line at p, quoted and shortened for messages.
func (p *Pos) Sample() string {
	s := p.Text()
	if r := []rune(s); len(r) > 40 {
		s = string(r[:37]) + "..."
	}
	sample := strconv.Quote(s)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`%s`", sample)
}
