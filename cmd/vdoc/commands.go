package main

import (
	"github.com/scott-cotton/cli"
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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, xml/x, ini/i, csv/c, yaml/y (default from file extension, else json)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, xml/x, ini/i, csv/c, yaml/y, tree/t (default input format)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "vdoc").
		WithSynopsis("vdoc [opts] command [opts]").
		WithDescription("vdoc reads, edits and converts json, xml, ini, csv and yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vdocMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			AddCommand(cfg),
			DeleteCommand(cfg),
			RenameCommand(cfg),
			SquashCommand(cfg),
			DiffCommand(cfg),
			B64Command(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v", "convert").
		WithSynopsis("view [files]").
		WithDescription("view documents, converting them to the output format").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the members at path, such as .servers[0].host, from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Add, "add").
		WithAliases("a").
		WithSynopsis("add [-t type] <path> <name> <value> [file]").
		WithDescription("add a member to the container at path. The value is read as yaml unless -t names a string or binary type.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Delete, "delete").
		WithAliases("del", "rm").
		WithSynopsis("delete <path> [file]").
		WithDescription("delete the member at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithAliases("mv").
		WithSynopsis("rename <path> <name> [file]").
		WithDescription("rename the member at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func SquashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SquashConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Squash, "squash").
		WithAliases("sq").
		WithSynopsis("squash <path> <depth> [file]").
		WithDescription("flatten the container at path to at most depth levels of containers").
		WithRun(func(cc *cli.Context, args []string) error {
			return squash(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] a b").
		WithDescription("diff two documents; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func B64Command(mainCfg *MainConfig) *cli.Command {
	cfg := &B64Config{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.B64, "b64").
		WithSynopsis("b64 [-d] [files]").
		WithDescription("base64 encode or decode files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return b64Cmd(cfg, cc, args)
		})
}
