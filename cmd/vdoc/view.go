package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	for _, file := range files {
		if err := viewFile(cfg, cc, w, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	n, in, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if err := writeObj(cfg.MainConfig, w, n, in); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
