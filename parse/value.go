package parse

import (
	"fmt"
	"math"
	"sort"

	"github.com/vdoc-go/vdoc/ir"
)

// object is a decoded mapping, in document order.
type object []field

type field struct {
	name string
	v    any
}

// scalar returns the type and payload of a decoded scalar value.
func scalar(v any) (ir.Type, any, bool) {
	switch x := v.(type) {
	case nil:
		return ir.NullType, nil, true
	case bool:
		return ir.BoolType, x, true
	case string:
		return ir.StringType, x, true
	case []byte:
		return ir.BinaryType, x, true
	case float32:
		return ir.Float64Type, float64(x), true
	case float64:
		return ir.Float64Type, x, true
	case int, int8, int16, int32, int64:
		return ir.Int64Type, toInt64(x), true
	case uint, uint8, uint16, uint32, uint64:
		u := toUint64(x)
		if u <= math.MaxInt64 {
			return ir.Int64Type, int64(u), true
		}
		return ir.Uint64Type, u, true
	}
	return ir.NullType, nil, false
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}
	return 0
}

func toUint64(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	}
	return 0
}

// numberType returns the single numeric type the numbers of an array are
// stored as: Float64 if any is fractional or if negative integers are mixed
// with integers beyond the Int64 range, Uint64 if some are beyond that range
// and none negative, Int64 otherwise. ok is false when elems hold no
// numbers.
func numberType(elems []any) (ir.Type, bool) {
	var hasFloat, hasNeg, hasBig, hasNum bool
	for _, e := range elems {
		t, p, ok := scalar(e)
		if !ok {
			continue
		}
		switch t {
		case ir.Float64Type:
			hasFloat = true
		case ir.Int64Type:
			hasNeg = hasNeg || p.(int64) < 0
		case ir.Uint64Type:
			hasBig = true
		default:
			continue
		}
		hasNum = true
	}
	switch {
	case !hasNum:
		return ir.NullType, false
	case hasFloat, hasNeg && hasBig:
		return ir.Float64Type, true
	case hasBig:
		return ir.Uint64Type, true
	}
	return ir.Int64Type, true
}

func convertNumber(p any, to ir.Type) any {
	switch to {
	case ir.Float64Type:
		switch x := p.(type) {
		case int64:
			return float64(x)
		case uint64:
			return float64(x)
		}
	case ir.Uint64Type:
		if x, ok := p.(int64); ok {
			return uint64(x)
		}
	}
	return p
}

// build makes a tree named name from a decoded value in a new Doc.
func build(name string, v any, maxDepth int) (ir.Node, error) {
	switch v.(type) {
	case object, []any:
		t := ir.ObjectType
		if _, ok := v.([]any); ok {
			t = ir.ArrayType
		}
		b := ir.NewBuilder(name, t)
		if err := members(b, v, 1, maxDepth); err != nil {
			return ir.Node{}, err
		}
		return b.Build()
	}
	t, p, ok := scalar(v)
	if !ok {
		return ir.Node{}, fmt.Errorf("%w: unsupported value %T", ErrParse, v)
	}
	if t == ir.NullType {
		return ir.New(name, t)
	}
	return ir.New(name, t, p)
}

func members(b *ir.Builder, v any, depth, maxDepth int) error {
	switch x := v.(type) {
	case object:
		for _, f := range x {
			if err := member(b, f.name, f.v, ir.NullType, depth, maxDepth); err != nil {
				return err
			}
		}
	case []any:
		nt, _ := numberType(x)
		for _, e := range x {
			if err := member(b, "", e, nt, depth, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}

// member adds v named name to the open container of b. Numbers are stored
// as nt when it is not Null.
func member(b *ir.Builder, name string, v any, nt ir.Type, depth, maxDepth int) error {
	switch v.(type) {
	case object, []any:
		if depth >= maxDepth {
			return fmt.Errorf("%w: %d levels", ErrTooDeep, maxDepth)
		}
		if _, ok := v.([]any); ok {
			b.Array(name)
		} else {
			b.Object(name)
		}
		if err := members(b, v, depth+1, maxDepth); err != nil {
			return err
		}
		b.End()
		return nil
	}
	t, p, ok := scalar(v)
	if !ok {
		return fmt.Errorf("%w: unsupported value %T", ErrParse, v)
	}
	if nt != ir.NullType && t.IsNumber() {
		t, p = nt, convertNumber(p, nt)
	}
	b.Value(name, t, p)
	return nil
}

// objectOf orders the entries of a plain map by key.
func objectOf(m map[string]any) object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make(object, len(keys))
	for i, k := range keys {
		res[i] = field{name: k, v: m[k]}
	}
	return res
}
