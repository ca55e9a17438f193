package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/vdoc-go/vdoc/encode"
	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='encode with color'"`
	Verbose  bool   `cli:"name=v desc='log each step to stderr'"`
	CSVHead  bool   `cli:"name=csvh desc='the first csv line holds cell names'"`
	CSVCol   bool   `cli:"name=csvc desc='the first csv column holds line names'"`
	CSVSep   string `cli:"name=csvsep desc='csv separator instead of ,'"`
	MaxDepth int    `cli:"name=depth desc='maximum nesting accepted when parsing'"`
	Indent   int    `cli:"name=indent desc='spaces per level of xml and tree output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format of the input at path: -I if given, else the
// one named by its extension, else JSON.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, err := format.FromPath(path); err == nil && f.CanParse() {
		return f
	}
	return format.JSONFormat
}

// outFormat returns -O if given, else in.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

func (cfg *MainConfig) csvFlags() format.CSVFlag {
	var res format.CSVFlag
	if cfg.CSVHead {
		res |= format.FirstLineAsNames
	}
	if cfg.CSVCol {
		res |= format.FirstColumnAsNames
	}
	if cfg.CSVSep != "" {
		res |= format.UseCustomSeparator
	}
	return res
}

func (cfg *MainConfig) csvSep() rune {
	r, _ := utf8.DecodeRuneInString(cfg.CSVSep)
	return r
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	in := cfg.inFormat(path)
	res := []parse.ParseOption{parse.ParseFormat(in)}
	if in.IsCSV() {
		res = append(res, parse.CSVFlags(cfg.csvFlags()))
		if cfg.CSVSep != "" {
			res = append(res, parse.CSVSeparator(cfg.csvSep()))
		}
	}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.ParseMaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer, in format.Format) []encode.EncodeOption {
	out := cfg.outFormat(in)
	res := []encode.EncodeOption{encode.EncodeFormat(out)}
	switch {
	case out.IsCSV():
		res = append(res, encode.CSVFlags(cfg.csvFlags()))
		if cfg.CSVSep != "" {
			res = append(res, encode.CSVSeparator(cfg.csvSep()))
		}
	case out.IsXML(), out.IsTree():
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w is coloured: -color if given, else
// whether w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type AddConfig struct {
	*MainConfig
	Type string `cli:"name=t desc='type of the new member, e.g. Int32 (default taken from the value)'"`
	Add  *cli.Command
}

type DeleteConfig struct {
	*MainConfig
	Delete *cli.Command
}

type RenameConfig struct {
	*MainConfig
	Rename *cli.Command
}

type SquashConfig struct {
	*MainConfig
	Squash *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type B64Config struct {
	*MainConfig
	Decode bool `cli:"name=d desc='decode instead of encode'"`
	B64    *cli.Command
}
