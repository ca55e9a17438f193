package main

import (
	"fmt"
	"io"

	"github.com/vdoc-go/vdoc/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, _, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, _, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	lines, err := libdiff.Diff(a, b)
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := writeDiff(cc.Out, lines, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, lines []libdiff.Line, colored bool) error {
	for _, l := range lines {
		s := l.String()
		if colored {
			switch l.Op {
			case libdiff.Delete:
				s = color.RedString("%s", s)
			case libdiff.Insert:
				s = color.GreenString("%s", s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
