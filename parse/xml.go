package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

type xmlFrame struct {
	node  ir.Node
	elems map[string]bool
	text  strings.Builder
}

func parseXML(d []byte, o *parseOpts) (ir.Node, error) {
	root, err := ir.New("xml", ir.ObjectType, ir.End)
	if err != nil {
		return ir.Node{}, err
	}
	dec := xml.NewDecoder(bytes.NewReader(d))
	stack := []*xmlFrame{{node: root}}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ir.Node{}, fmt.Errorf("%w: xml: %w", ErrParse, err)
		}
		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= o.maxDepth {
				return ir.Node{}, fmt.Errorf("%w: %d levels", ErrTooDeep, o.maxDepth)
			}
			el, err := xmlElement(top, t)
			if err != nil {
				return ir.Node{}, err
			}
			stack = append(stack, &xmlFrame{node: el})
		case xml.EndElement:
			if text := strings.TrimSpace(top.text.String()); text != "" && len(top.elems) == 0 {
				if _, err := top.node.Add(".", "value", ir.StringType, text); err != nil {
					return ir.Node{}, err
				}
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			top.text.Write(t)
		}
	}
	return root, nil
}

// xmlElement adds an object for the element start to the element of f.
// The second element of a name turns the first into an array holding both.
// A child element named "attributes" groups the same way with the
// attribute object of f.
func xmlElement(f *xmlFrame, start xml.StartElement) (ir.Node, error) {
	name := start.Name.Local
	if err := ir.CheckName(name); err != nil {
		return ir.Node{}, err
	}
	var el ir.Node
	var err error
	switch prev := f.node.Get(name); {
	case !f.elems[name] && !prev.Valid():
		el, err = f.node.Add(".", name, ir.ObjectType, ir.End)
	case prev.Type() == ir.ArrayType:
		el, err = prev.Add(".", "", ir.ObjectType, ir.End)
	default:
		el, err = xmlGroup(f.node, name)
	}
	if err != nil {
		return ir.Node{}, err
	}
	if f.elems == nil {
		f.elems = map[string]bool{}
	}
	f.elems[name] = true
	if len(start.Attr) == 0 {
		return el, nil
	}
	attrs, err := el.Add(".", "attributes", ir.ObjectType, ir.End)
	if err != nil {
		return ir.Node{}, err
	}
	for _, a := range start.Attr {
		if _, err := attrs.Add(".", a.Name.Local, ir.StringType, a.Value); err != nil {
			return ir.Node{}, err
		}
	}
	return el, nil
}

func xmlGroup(parent ir.Node, name string) (ir.Node, error) {
	arr, err := parent.Doc().New(name, ir.ArrayType, ir.End)
	if err != nil {
		return ir.Node{}, err
	}
	first, err := parent.Replace(name, arr)
	if err != nil {
		return ir.Node{}, err
	}
	if err := first.Rename(".", ""); err != nil {
		return ir.Node{}, err
	}
	if _, err := arr.Append(".", first); err != nil {
		return ir.Node{}, err
	}
	return arr.Add(".", "", ir.ObjectType, ir.End)
}
