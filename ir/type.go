package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	ObjectType
	ArrayType
	Float64Type
	Float32Type
	Int64Type
	Int32Type
	Int16Type
	Int8Type
	Uint64Type
	Uint32Type
	Uint16Type
	Uint8Type
	BoolType
	StringType
	ConstStringType
	BinaryType
	ConstBinaryType

	numTypes
)

var typeNames = map[Type]string{
	NullType:        "Null",
	ObjectType:      "Object",
	ArrayType:       "Array",
	Float64Type:     "Float64",
	Float32Type:     "Float32",
	Int64Type:       "Int64",
	Int32Type:       "Int32",
	Int16Type:       "Int16",
	Int8Type:        "Int8",
	Uint64Type:      "Uint64",
	Uint32Type:      "Uint32",
	Uint16Type:      "Uint16",
	Uint8Type:       "Uint8",
	BoolType:        "Bool",
	StringType:      "String",
	ConstStringType: "ConstString",
	BinaryType:      "Binary",
	ConstBinaryType: "ConstBinary",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrNotAType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotAType, d)
}

// Types returns every type in declaration order.
func Types() []Type {
	res := make([]Type, 0, numTypes)
	for t := NullType; t < numTypes; t++ {
		res = append(res, t)
	}
	return res
}

func (t Type) Valid() bool { return t >= NullType && t < numTypes }

func (t Type) IsContainer() bool { return t == ObjectType || t == ArrayType }

// IsLeaf reports whether t is a scalar type; Null is a leaf.
func (t Type) IsLeaf() bool { return t.Valid() && !t.IsContainer() }

func (t Type) IsSigned() bool {
	switch t {
	case Int64Type, Int32Type, Int16Type, Int8Type:
		return true
	}
	return false
}

func (t Type) IsUnsigned() bool {
	switch t {
	case Uint64Type, Uint32Type, Uint16Type, Uint8Type:
		return true
	}
	return false
}

func (t Type) IsFloat() bool { return t == Float64Type || t == Float32Type }

func (t Type) IsNumber() bool { return t.IsSigned() || t.IsUnsigned() || t.IsFloat() }

func (t Type) IsString() bool { return t == StringType || t == ConstStringType }

func (t Type) IsBinary() bool { return t == BinaryType || t == ConstBinaryType }

// IsConst reports whether payloads of type t are borrowed rather than owned.
func (t Type) IsConst() bool { return t == ConstStringType || t == ConstBinaryType }

// bits returns the width in bits of a numeric type, or 0.
func (t Type) bits() int {
	switch t {
	case Float64Type, Int64Type, Uint64Type:
		return 64
	case Float32Type, Int32Type, Uint32Type:
		return 32
	case Int16Type, Uint16Type:
		return 16
	case Int8Type, Uint8Type:
		return 8
	}
	return 0
}
