package encode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

// writeTree writes one line per node,
//
//	[name] (Type): "value"
//
// indented by level. Containers have no value; binary payloads are shown
// in hex.
func writeTree(buf *bytes.Buffer, node ir.Node, es *EncState) error {
	step := strings.Repeat(" ", es.indentOr(4))
	depth := 0
	return node.Visit(func(n ir.Node, isPost bool) (bool, error) {
		t := n.Type()
		if isPost {
			if t.IsContainer() {
				depth--
			}
			return false, nil
		}
		buf.WriteString(strings.Repeat(step, depth))
		buf.WriteString(es.color(t, SepColor, "["))
		buf.WriteString(es.color(t, NameColor, n.Name()))
		buf.WriteString(es.color(t, SepColor, "] ("))
		buf.WriteString(es.color(t, TypeColor, t.String()))
		buf.WriteString(es.color(t, SepColor, "):"))
		if t.IsContainer() {
			buf.WriteByte('\n')
			depth++
			return true, nil
		}
		buf.WriteString(" " + es.color(t, ValueColor, `"`+treeValue(n)+`"`) + "\n")
		return false, nil
	})
}

func treeValue(n ir.Node) string {
	t := n.Type()
	switch {
	case t == ir.NullType:
		return "null"
	case t.IsBinary():
		v, _ := n.Bytes()
		return fmt.Sprintf("0x%X", v)
	}
	return text(n)
}
