package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vdoc-go/vdoc/encode"
	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/ir"
	"github.com/vdoc-go/vdoc/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile parses the document at path, "-" for standard input, and
// returns it with the format it was read in.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (ir.Node, format.Format, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return ir.Node{}, 0, err
	}
	f := cfg.inFormat(path)
	theLog.Debug("parsing", "file", path, "format", f, "bytes", len(d))
	n, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return ir.Node{}, 0, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, f, nil
}

func writeObj(cfg *MainConfig, w io.Writer, n ir.Node, in format.Format) error {
	opts := cfg.encOpts(w, in)
	theLog.Debug("encoding", "node", n.Name(), "format", encode.FormatFromOpts(opts...))
	return encode.Encode(n, w, opts...)
}
