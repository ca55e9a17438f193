package ir

// Lit describes a node literally. Lits are built with the constructor
// functions below and turned into trees with Build:
//
//	root, err := ir.Build(ir.Obj("root",
//		ir.I32("n", 5),
//		ir.Str("s", "hi"),
//		ir.Arr("b", ir.Bool("", true), ir.Null(""))))
type Lit struct {
	Name    string
	Type    Type
	Value   any
	Members []Lit
}

func Obj(name string, members ...Lit) Lit {
	return Lit{Name: name, Type: ObjectType, Members: members}
}

func Arr(name string, members ...Lit) Lit {
	return Lit{Name: name, Type: ArrayType, Members: members}
}

func Null(name string) Lit { return Lit{Name: name, Type: NullType} }

func Bool(name string, v bool) Lit { return Lit{Name: name, Type: BoolType, Value: v} }

func I8(name string, v int8) Lit   { return Lit{Name: name, Type: Int8Type, Value: v} }
func I16(name string, v int16) Lit { return Lit{Name: name, Type: Int16Type, Value: v} }
func I32(name string, v int32) Lit { return Lit{Name: name, Type: Int32Type, Value: v} }
func I64(name string, v int64) Lit { return Lit{Name: name, Type: Int64Type, Value: v} }

func U8(name string, v uint8) Lit   { return Lit{Name: name, Type: Uint8Type, Value: v} }
func U16(name string, v uint16) Lit { return Lit{Name: name, Type: Uint16Type, Value: v} }
func U32(name string, v uint32) Lit { return Lit{Name: name, Type: Uint32Type, Value: v} }
func U64(name string, v uint64) Lit { return Lit{Name: name, Type: Uint64Type, Value: v} }

func F32(name string, v float32) Lit { return Lit{Name: name, Type: Float32Type, Value: v} }
func F64(name string, v float64) Lit { return Lit{Name: name, Type: Float64Type, Value: v} }

func Str(name, v string) Lit      { return Lit{Name: name, Type: StringType, Value: v} }
func ConstStr(name, v string) Lit { return Lit{Name: name, Type: ConstStringType, Value: v} }

func Bin(name string, v []byte) Lit      { return Lit{Name: name, Type: BinaryType, Value: v} }
func ConstBin(name string, v []byte) Lit { return Lit{Name: name, Type: ConstBinaryType, Value: v} }

// Build builds l in a new Doc.
func Build(l Lit) (Node, error) { return NewDoc().Build(l) }

// Build builds l as a detached tree in d.
func (d *Doc) Build(l Lit) (Node, error) {
	if !l.Type.IsContainer() {
		if l.Type == NullType {
			return d.New(l.Name, l.Type)
		}
		return d.New(l.Name, l.Type, l.Value)
	}
	b := d.NewBuilder(l.Name, l.Type)
	for _, m := range l.Members {
		b.Lit(m)
	}
	return b.Build()
}
