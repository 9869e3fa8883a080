package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keyfmt/encode"
	"github.com/signadot/keyfmt/eval"
	"github.com/signadot/keyfmt/keymap"
)

// loadDocs reads each file, "-" meaning in. No files means in; in is read
// at most once.
func loadDocs(in io.Reader, files []string) ([]*keymap.Document, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	stdin := 0
	for _, file := range files {
		if file == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("%w: stdin (-) given %d times", cli.ErrUsage, stdin)
	}
	res := make([]*keymap.Document, 0, len(files))
	for _, file := range files {
		var (
			doc *keymap.Document
			err error
		)
		if file == "-" {
			doc, err = keymap.Read("-", in)
		} else {
			doc, err = keymap.ReadFile(file)
		}
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}
	return res, nil
}

// loadReports finds the blocks of each doc and keeps those matching where,
// if where is not empty.
func loadReports(docs []*keymap.Document, where string) ([]*encode.Report, error) {
	var (
		f   *eval.Filter
		err error
	)
	if where != "" {
		f, err = eval.Compile(where)
		if err != nil {
			return nil, err
		}
	}
	res := make([]*encode.Report, 0, len(docs))
	for _, doc := range docs {
		blocks, scanErr := keymap.Blocks(doc)
		infos, err := f.Apply(keymap.Infos(doc, blocks))
		if err != nil {
			return nil, err
		}
		res = append(res, encode.NewReport(doc, infos, scanErr))
	}
	return res, nil
}

// logUnterminated logs every unterminated block of reports and returns how
// many there were.
func logUnterminated(reports []*encode.Report) int {
	n := 0
	for _, r := range reports {
		for _, start := range r.Unterminated {
			theLog.Error(keymap.ErrUnterminated.Error(), "file", r.File, "line", start+1, "start", start)
			n++
		}
	}
	return n
}

// logScanErr logs the unterminated blocks in err, as returned by
// keymap.Blocks, and returns how many there were.
func logScanErr(err error) int {
	us := keymap.Unterminated(err)
	for _, u := range us {
		theLog.Error(keymap.ErrUnterminated.Error(), "file", u.Start.D.Name, "line", u.Start.Line(), "start", u.Start.I)
	}
	return len(us)
}
