package encode

import (
	"bytes"

	"github.com/goccy/go-yaml"
	"github.com/vdoc-go/vdoc/b64"
	"github.com/vdoc-go/vdoc/ir"
)

func writeYAML(buf *bytes.Buffer, node ir.Node, _ *EncState) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// toYAML converts n to the values go-yaml marshals, keeping member order.
func toYAML(n ir.Node) any {
	switch t := n.Type(); {
	case t == ir.ObjectType:
		res := yaml.MapSlice{}
		for c := range n.Children() {
			res = append(res, yaml.MapItem{Key: c.Name(), Value: toYAML(c)})
		}
		return res
	case t == ir.ArrayType:
		res := []any{}
		for c := range n.Children() {
			res = append(res, toYAML(c))
		}
		return res
	case t.IsBinary():
		v, _ := n.Bytes()
		return b64.Encode(v)
	}
	return n.Value()
}
