package parse

import "github.com/vdoc-go/vdoc/format"

// DefaultMaxDepth bounds the nesting of containers accepted by the parsers.
const DefaultMaxDepth = 512

type parseOpts struct {
	format   format.Format
	maxDepth int
	csvFlags format.CSVFlag
	csvSep   rune
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{format: format.JSONFormat, maxDepth: DefaultMaxDepth, csvSep: ','}
	for _, f := range opts {
		f(o)
	}
	return o
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseXML() ParseOption {
	return ParseFormat(format.XMLFormat)
}
func ParseINI() ParseOption {
	return ParseFormat(format.INIFormat)
}
func ParseCSV() ParseOption {
	return ParseFormat(format.CSVFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMaxDepth sets the deepest container nesting accepted, counting the
// root as 1. Values below 1 are ignored.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// CSVFlags sets how CSV names are read.
func CSVFlags(f format.CSVFlag) ParseOption {
	return func(o *parseOpts) { o.csvFlags = f }
}

// CSVSeparator sets the separator used when CSVFlags includes
// format.UseCustomSeparator.
func CSVSeparator(r rune) ParseOption {
	return func(o *parseOpts) { o.csvSep = r }
}
