package parse

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/vdoc-go/vdoc/ir"
)

func parseYAML(d []byte, o *parseOpts) (ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.New("yaml", ir.NullType)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return ir.Node{}, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	return build("yaml", fromYAML(v), o.maxDepth)
}

// fromYAML replaces the mappings decoded by go-yaml with objects.
func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(object, len(x))
		for i, it := range x {
			res[i] = field{name: fmt.Sprint(it.Key), v: fromYAML(it.Value)}
		}
		return res
	case map[string]any:
		res := objectOf(x)
		for i := range res {
			res[i].v = fromYAML(res[i].v)
		}
		return res
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = e
		}
		return fromYAML(m)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = fromYAML(e)
		}
		return res
	}
	return v
}
