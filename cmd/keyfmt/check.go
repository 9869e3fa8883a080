package main

import (
	"errors"
	"io"

	"github.com/signadot/keyfmt/encode"
	"github.com/signadot/keyfmt/keymap"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := loadDocs(cc.In, args)
	if err != nil {
		return err
	}
	n, err := checkDocs(cfg, cc.Out, docs)
	if err != nil {
		return err
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkDocs reports unterminated blocks of docs and returns how many were
// found. With FailFast it stops at the first one.
func checkDocs(cfg *CheckConfig, w io.Writer, docs []*keymap.Document) (int, error) {
	var (
		reports []*encode.Report
		n       int
	)
	for _, doc := range docs {
		var (
			found []keymap.Block
			errs  []error
		)
		err := keymap.Walk(doc, func(b keymap.Block, err error) error {
			if err == nil {
				found = append(found, b)
				return nil
			}
			if !errors.Is(err, keymap.ErrUnterminated) {
				return err
			}
			errs = append(errs, err)
			if cfg.FailFast {
				return err
			}
			return nil
		})
		if err != nil && !errors.Is(err, keymap.ErrUnterminated) {
			return 0, err
		}
		reports = append(reports, encode.NewReport(doc, keymap.Infos(doc, found), errors.Join(errs...)))
		n += len(errs)
		if cfg.FailFast && n != 0 {
			break
		}
	}
	if err := encode.EncodeCheck(reports, w, cfg.encOpts(w)...); err != nil {
		return 0, err
	}
	return n, nil
}
