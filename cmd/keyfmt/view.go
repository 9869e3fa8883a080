package main

import (
	"io"

	"github.com/signadot/keyfmt/encode"
	"github.com/signadot/keyfmt/keymap"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := loadDocs(cc.In, args)
	if err != nil {
		return err
	}
	n, err := viewDocs(cfg, cc.Out, docs)
	if err != nil {
		return err
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func viewDocs(cfg *ViewConfig, w io.Writer, docs []*keymap.Document) (int, error) {
	reports, err := loadReports(docs, cfg.Where)
	if err != nil {
		return 0, err
	}
	opts := append(cfg.encOpts(w), encode.EncodeLineNumbers(cfg.N))
	if err := encode.EncodeView(reports, w, opts...); err != nil {
		return 0, err
	}
	return logUnterminated(reports), nil
}
