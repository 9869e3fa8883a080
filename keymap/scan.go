package keymap

import "github.com/signadot/keyfmt/debug"

// Block is the inclusive line range of one bindings block.
type Block struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (b Block) Len() int {
	return b.End - b.Start + 1
}

// ScanEnd returns the index of the first line at or after start that closes
// a block. When there is none it returns -1 and an *UnterminatedError.
func ScanEnd(doc *Document, start int) (int, error) {
	n := doc.Len()
	if start < 0 || start >= n {
		return -1, startRangeErr(start, n)
	}
	for i := start; i < n; i++ {
		if IsBlockClose(doc.lines[i]) {
			if debug.Scan() {
				debug.Logf("scan %s: closed at %d\n", doc.Pos(start), i)
			}
			return i, nil
		}
	}
	if debug.Scan() {
		debug.Logf("scan %s: unterminated from %s\n", doc.Pos(start), doc.Pos(start).Sample())
	}
	return -1, &UnterminatedError{Start: doc.Pos(start)}
}

func Scan(doc *Document, start int) (Block, error) {
	end, err := ScanEnd(doc, start)
	if err != nil {
		return Block{}, err
	}
	return Block{Start: start, End: end}, nil
}
