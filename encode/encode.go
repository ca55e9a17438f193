// Package encode writes ir trees as JSON, XML, INI, CSV, YAML or as an
// indented listing of names, types and values.
//
// # Usage
//
//	err := encode.Encode(root, os.Stdout)
//
//	// CSV with a header line and ';' separators
//	err := encode.Encode(root, w, encode.EncodeFormat(format.CSVFormat),
//		encode.CSVFlags(format.FirstLineAsNames|format.UseCustomSeparator),
//		encode.CSVSeparator(';'))
//
// Output ends with a newline. XML, INI and CSV output need a container at
// the root.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/ir"
)

// ErrShape is returned when a tree has no representation in the output
// format.
var ErrShape = errors.New("tree shape not representable")

type EncState struct {
	indent   int
	format   format.Format
	csvFlags format.CSVFlag
	csvSep   rune

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{csvSep: ','}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) indentOr(def int) int {
	if es.indent > 0 {
		return es.indent
	}
	return def
}

// Encode writes node to w in the format chosen by opts, JSON by default.
func Encode(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encode(node, w, newState(opts))
}

func JSON(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeAs(format.JSONFormat, node, w, opts)
}
func XML(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeAs(format.XMLFormat, node, w, opts)
}
func INI(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeAs(format.INIFormat, node, w, opts)
}
func CSV(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeAs(format.CSVFormat, node, w, opts)
}
func YAML(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeAs(format.YAMLFormat, node, w, opts)
}

// Print writes the indented listing of node.
func Print(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeAs(format.TreeFormat, node, w, opts)
}

func encodeAs(f format.Format, node ir.Node, w io.Writer, opts []EncodeOption) error {
	es := newState(opts)
	es.format = f
	return encode(node, w, es)
}

func encode(node ir.Node, w io.Writer, es *EncState) error {
	if _, err := node.Resolve("."); err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch es.format {
	case format.JSONFormat:
		err = writeJSON(buf, node, es)
	case format.XMLFormat:
		err = writeXML(buf, node, es)
	case format.INIFormat:
		err = writeINI(buf, node, es)
	case format.CSVFormat:
		err = writeCSV(buf, node, es)
	case format.YAMLFormat:
		err = writeYAML(buf, node, es)
	case format.TreeFormat:
		err = writeTree(buf, node, es)
	default:
		err = fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func needContainer(n ir.Node) error {
	if !n.Type().IsContainer() {
		return fmt.Errorf("%w: %q is %s", ir.ErrNotContainer, n.Name(), n.Type())
	}
	return nil
}
