package ir

import (
	"fmt"
	"math"
)

// setPayload stores v as the payload of the scalar at i according to its
// type.
func (d *Doc) setPayload(i int32, v any) error {
	s := &d.slots[i]
	t := s.typ
	bad := func() error {
		return newErr(CodeTypeMismatch, fmt.Sprintf("%s: %T value for %s", s.name, v, t))
	}
	switch {
	case t == NullType || t.IsContainer():
		return newErr(CodeNotScalar, s.name)
	case t == BoolType:
		b, ok := v.(bool)
		if !ok {
			return bad()
		}
		s.bits = 0
		if b {
			s.bits = 1
		}
	case t.IsSigned():
		x, ok := toInt64(v)
		if !ok || x < -1<<(t.bits()-1) || x > 1<<(t.bits()-1)-1 {
			return bad()
		}
		s.bits = uint64(x)
	case t.IsUnsigned():
		x, ok := toUint64(v)
		if !ok || (t.bits() < 64 && x > 1<<t.bits()-1) {
			return bad()
		}
		s.bits = x
	case t == Float64Type:
		switch f := v.(type) {
		case float64:
			s.bits = math.Float64bits(f)
		case float32:
			s.bits = math.Float64bits(float64(f))
		default:
			return bad()
		}
	case t == Float32Type:
		switch f := v.(type) {
		case float32:
			s.bits = uint64(math.Float32bits(f))
		case float64:
			s.bits = uint64(math.Float32bits(float32(f)))
		default:
			return bad()
		}
	case t.IsString():
		switch x := v.(type) {
		case string:
			s.str = x
		case []byte:
			s.str = string(x)
		default:
			return bad()
		}
	case t == BinaryType:
		switch x := v.(type) {
		case []byte:
			s.bin = cloneBytes(x)
		case string:
			s.bin = []byte(x)
		default:
			return bad()
		}
	case t == ConstBinaryType:
		switch x := v.(type) {
		case []byte:
			s.bin = x
		case string:
			s.bin = []byte(x)
		default:
			return bad()
		}
	default:
		return newErr(CodeNotAType, s.name)
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(v)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int, int8, int16, int32, int64:
		i, _ := toInt64(v)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	}
	return 0, false
}

// value returns the payload of the slot at i as a Go value of the type
// matching the node's type.
func (d *Doc) value(i int32) any {
	s := &d.slots[i]
	switch s.typ {
	case BoolType:
		return s.bits != 0
	case Int64Type:
		return int64(s.bits)
	case Int32Type:
		return int32(s.bits)
	case Int16Type:
		return int16(s.bits)
	case Int8Type:
		return int8(s.bits)
	case Uint64Type:
		return s.bits
	case Uint32Type:
		return uint32(s.bits)
	case Uint16Type:
		return uint16(s.bits)
	case Uint8Type:
		return uint8(s.bits)
	case Float64Type:
		return math.Float64frombits(s.bits)
	case Float32Type:
		return math.Float32frombits(uint32(s.bits))
	case StringType, ConstStringType:
		return s.str
	case BinaryType, ConstBinaryType:
		return s.bin
	}
	return nil
}
