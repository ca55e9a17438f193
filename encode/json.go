package encode

import (
	"bytes"
	"math"

	"github.com/goccy/go-json"
	"github.com/vdoc-go/vdoc/ir"
)

func writeJSON(buf *bytes.Buffer, node ir.Node, es *EncState) error {
	err := node.Visit(func(n ir.Node, isPost bool) (bool, error) {
		t := n.Type()
		if isPost {
			switch t {
			case ir.ObjectType:
				buf.WriteString(es.color(t, SepColor, "}"))
			case ir.ArrayType:
				buf.WriteString(es.color(t, SepColor, "]"))
			}
			return false, nil
		}
		if n != node {
			p := n.Parent()
			if n.Prev().Valid() {
				buf.WriteString(es.color(p.Type(), SepColor, ","))
			}
			if p.Type() == ir.ObjectType {
				key, err := json.MarshalWithOption(n.Name(), json.DisableHTMLEscape())
				if err != nil {
					return false, err
				}
				buf.WriteString(es.color(t, NameColor, string(key)))
				buf.WriteString(es.color(p.Type(), SepColor, ":"))
			}
		}
		switch t {
		case ir.ObjectType:
			buf.WriteString(es.color(t, SepColor, "{"))
			return true, nil
		case ir.ArrayType:
			buf.WriteString(es.color(t, SepColor, "["))
			return true, nil
		}
		v, err := jsonScalar(n)
		if err != nil {
			return false, err
		}
		buf.WriteString(es.color(t, ValueColor, v))
		return false, nil
	})
	if err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

func jsonScalar(n ir.Node) (string, error) {
	t := n.Type()
	switch {
	case t == ir.NullType:
		return "null", nil
	case t.IsFloat():
		if f, _ := n.Float64(); math.IsNaN(f) || math.IsInf(f, 0) {
			return "null", nil
		}
	case t.IsString(), t.IsBinary():
		d, err := json.MarshalWithOption(text(n), json.DisableHTMLEscape())
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	return text(n), nil
}
