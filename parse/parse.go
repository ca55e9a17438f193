// Package parse reads JSON, XML, INI, CSV and YAML text into ir trees.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// CSV with a header line
//	root, err := parse.Parse(data, parse.ParseCSV(),
//		parse.CSVFlags(format.FirstLineAsNames))
//
// Each format has an entry point of its own as well: JSON, XML, INI, CSV
// and YAML. The root of the result is named after the format and lives in
// a new ir.Doc.
package parse

import (
	"fmt"

	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/ir"
)

// Parse reads d in the format chosen by opts, JSON by default.
func Parse(d []byte, opts ...ParseOption) (ir.Node, error) {
	o := newOpts(opts)
	switch o.format {
	case format.JSONFormat:
		return parseJSON(d, o)
	case format.XMLFormat:
		return parseXML(d, o)
	case format.INIFormat:
		return parseINI(d, o)
	case format.CSVFormat:
		return parseCSV(d, o)
	case format.YAMLFormat:
		return parseYAML(d, o)
	}
	return ir.Node{}, fmt.Errorf("%w: cannot parse %s", ErrBadFormat, o.format)
}

func JSON(d []byte, opts ...ParseOption) (ir.Node, error) { return parseJSON(d, newOpts(opts)) }
func XML(d []byte, opts ...ParseOption) (ir.Node, error)  { return parseXML(d, newOpts(opts)) }
func INI(d []byte, opts ...ParseOption) (ir.Node, error)  { return parseINI(d, newOpts(opts)) }
func CSV(d []byte, opts ...ParseOption) (ir.Node, error)  { return parseCSV(d, newOpts(opts)) }
func YAML(d []byte, opts ...ParseOption) (ir.Node, error) { return parseYAML(d, newOpts(opts)) }
