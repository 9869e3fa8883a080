package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/keyfmt/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format, one of " + format.Names() + " or its first letter",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "keyfmt").
		WithSynopsis("keyfmt [opts] command [opts]").
		WithDescription("keyfmt finds the bindings blocks of zmk keymap files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keyfmtMain(cfg, cc, args)
		}).
		WithSubs(
			BlocksCommand(cfg),
			CheckCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg))
}

func BlocksCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlocksConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("blocks").
		WithAliases("b", "bl").
		WithOpts(opts...).
		WithSynopsis("blocks [-where expr] [files]").
		WithDescription("list the bindings blocks of keymap files").
		WithRun(func(cc *cli.Context, args []string) error {
			return blocks(cfg, cc, args)
		})
	cfg.Blocks = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithOpts(opts...).
		WithSynopsis("check [-fail-fast] [files]").
		WithDescription("check that every bindings block is terminated").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-where expr] [-n] [files]").
		WithDescription("view bindings blocks in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-patch] a b").
		WithDescription("diff the bindings blocks of two keymap files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
