package main

import (
	"io"

	"github.com/signadot/keyfmt/encode"
	"github.com/signadot/keyfmt/keymap"

	"github.com/scott-cotton/cli"
)

func blocks(cfg *BlocksConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Blocks.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := loadDocs(cc.In, args)
	if err != nil {
		return err
	}
	n, err := blocksDocs(cfg, cc.Out, docs)
	if err != nil {
		return err
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// blocksDocs writes the block report of docs and returns the number of
// unterminated blocks.
func blocksDocs(cfg *BlocksConfig, w io.Writer, docs []*keymap.Document) (int, error) {
	reports, err := loadReports(docs, cfg.Where)
	if err != nil {
		return 0, err
	}
	if err := encode.EncodeReports(reports, w, cfg.encOpts(w)...); err != nil {
		return 0, err
	}
	return logUnterminated(reports), nil
}
