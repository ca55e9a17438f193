package main

import (
	"bytes"
	"io"

	"github.com/vdoc-go/vdoc/b64"

	"github.com/scott-cotton/cli"
)

func b64Cmd(cfg *B64Config, cc *cli.Context, args []string) error {
	args, err := cfg.B64.Parse(cc, args)
	if err != nil {
		cfg.B64.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if cfg.Decode {
			res, err := b64.Decode(string(bytes.TrimSpace(d)))
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(res); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(cc.Out, b64.Encode(d)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
