package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/keyfmt/encode"
	"github.com/signadot/keyfmt/keymap"
	"github.com/signadot/keyfmt/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	docs, err := loadDocs(cc.In, args)
	if errors.Is(err, cli.ErrUsage) {
		return err
	}
	if err != nil {
		theLog.Error(err.Error())
		return cli.ExitCodeErr(2)
	}
	differs, err := diffDocs(cfg, cc.Out, docs[0], docs[1])
	if err != nil {
		theLog.Error(err.Error())
		return cli.ExitCodeErr(2)
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the differences between the bindings blocks of a and b and
// reports whether there are any. Unterminated blocks in either input are an
// error.
func diffDocs(cfg *DiffConfig, w io.Writer, a, b *keymap.Document) (bool, error) {
	aBlocks, aErr := keymap.Blocks(a)
	bBlocks, bErr := keymap.Blocks(b)
	if n := logScanErr(errors.Join(aErr, bErr)); n != 0 {
		return false, fmt.Errorf("%w: %d block(s), not diffing", keymap.ErrUnterminated, n)
	}
	from, to := keymap.Infos(a, aBlocks), keymap.Infos(b, bBlocks)
	if cfg.Patch {
		if cfg.Reverse {
			from, to = to, from
		}
		return diffPatch(cfg, w, from, to)
	}
	diffs := libdiff.Diff(from, to)
	fromName, toName := a.Name, b.Name
	if cfg.Reverse {
		diffs = libdiff.Reverse(diffs)
		fromName, toName = toName, fromName
	}
	if err := encode.EncodeDiffs(fromName, toName, diffs, w, cfg.encOpts(w)...); err != nil {
		return false, err
	}
	return len(diffs) != 0, nil
}

func diffPatch(cfg *DiffConfig, w io.Writer, from, to []keymap.BlockInfo) (bool, error) {
	patch, err := libdiff.MergePatch(from, to)
	if err != nil {
		return false, err
	}
	var v map[string]any
	if err := json.Unmarshal(patch, &v); err != nil {
		return false, err
	}
	if err := encode.EncodeValue(v, w, cfg.encOpts(w)...); err != nil {
		return false, err
	}
	return len(v) != 0, nil
}
