package encode

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

// xmlItem names elements for anonymous members.
const xmlItem = "item"

type xmlWriter struct {
	buf  *bytes.Buffer
	step string
}

func writeXML(buf *bytes.Buffer, node ir.Node, es *EncState) error {
	if err := needContainer(node); err != nil {
		return err
	}
	w := &xmlWriter{buf: buf, step: strings.Repeat(" ", es.indentOr(2))}
	buf.WriteString(xml.Header)
	for c := range node.Children() {
		w.node(elemName(c, xmlItem), c, 0)
	}
	return nil
}

func elemName(n ir.Node, def string) string {
	if n.Name() == "" {
		return def
	}
	return n.Name()
}

func (w *xmlWriter) node(name string, n ir.Node, depth int) {
	ind := strings.Repeat(w.step, depth)
	switch t := n.Type(); {
	case t == ir.ArrayType:
		for c := range n.Children() {
			w.node(name, c, depth)
		}
	case t == ir.NullType:
		w.buf.WriteString(ind + "<" + name + "/>\n")
	case t == ir.ObjectType:
		w.element(name, n, ind, depth)
	default:
		w.buf.WriteString(ind + "<" + name + ">" + escape(text(n)) + "</" + name + ">\n")
	}
}

// element writes an object: its "attributes" object becomes the element
// attributes and its scalar "value" the element text.
func (w *xmlWriter) element(name string, n ir.Node, ind string, depth int) {
	var attrs strings.Builder
	var value string
	hasValue := false
	var kids []ir.Node
	for c := range n.Children() {
		switch {
		case c.Name() == "attributes" && c.Type() == ir.ObjectType && allScalars(c):
			for a := range c.Children() {
				attrs.WriteString(" " + elemName(a, xmlItem) + `="` + escape(text(a)) + `"`)
			}
		case c.Name() == "value" && c.Type().IsLeaf() && c.Type() != ir.NullType:
			value, hasValue = text(c), true
		default:
			kids = append(kids, c)
		}
	}
	open := ind + "<" + name + attrs.String()
	switch {
	case len(kids) == 0 && !hasValue:
		w.buf.WriteString(open + "/>\n")
	case len(kids) == 0:
		w.buf.WriteString(open + ">" + escape(value) + "</" + name + ">\n")
	default:
		w.buf.WriteString(open + ">\n")
		if hasValue {
			w.buf.WriteString(ind + w.step + escape(value) + "\n")
		}
		for _, k := range kids {
			w.node(elemName(k, xmlItem), k, depth+1)
		}
		w.buf.WriteString(ind + "</" + name + ">\n")
	}
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
