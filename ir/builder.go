package ir

// Builder constructs a tree member by member:
//
//	root, err := ir.NewBuilder("root", ir.ObjectType).
//		Int32("n", 5).
//		String("s", "hi").
//		Array("b").Bool("", true).Null("").End().
//		Build()
//
// Every call runs the checks of New. The first error is kept, later calls
// do nothing and Build returns it.
type Builder struct {
	doc   *Doc
	root  int32
	stack []int32
	err   error
}

// NewBuilder returns a Builder for a container in a new Doc.
func NewBuilder(name string, t Type) *Builder {
	return NewDoc().NewBuilder(name, t)
}

// NewBuilder returns a Builder for a detached container named name of type
// t in d.
func (d *Doc) NewBuilder(name string, t Type) *Builder {
	b := &Builder{doc: d, root: none}
	switch {
	case !t.Valid():
		b.err = newErr(CodeNotAType, name)
	case !t.IsContainer():
		b.err = newErr(CodeNotContainer, name)
	default:
		b.err = CheckName(name)
	}
	if b.err == nil {
		b.root = d.alloc(name, t)
		b.stack = []int32{b.root}
	}
	return b
}

// Err returns the first error encountered.
func (b *Builder) Err() error { return b.err }

func (b *Builder) member(name string, t Type) (int32, bool) {
	if b.err != nil {
		return none, false
	}
	if len(b.stack) == 0 {
		b.err = newErr(CodeNotContainer, name)
		return none, false
	}
	parent := b.stack[len(b.stack)-1]
	if err := b.doc.checkMember(parent, name, t); err != nil {
		b.err = err
		return none, false
	}
	i := b.doc.alloc(name, t)
	b.doc.linkTail(parent, i)
	return i, true
}

// Value adds a scalar member of type t with value v.
func (b *Builder) Value(name string, t Type, v any) *Builder {
	if t.IsContainer() {
		if b.err == nil {
			b.err = newErr(CodeNotScalar, name)
		}
		return b
	}
	i, ok := b.member(name, t)
	if !ok || t == NullType {
		return b
	}
	if err := b.doc.setPayload(i, v); err != nil {
		b.err = err
	}
	return b
}

func (b *Builder) Null(name string) *Builder { return b.Value(name, NullType, nil) }

func (b *Builder) Bool(name string, v bool) *Builder { return b.Value(name, BoolType, v) }

func (b *Builder) Int8(name string, v int8) *Builder   { return b.Value(name, Int8Type, v) }
func (b *Builder) Int16(name string, v int16) *Builder { return b.Value(name, Int16Type, v) }
func (b *Builder) Int32(name string, v int32) *Builder { return b.Value(name, Int32Type, v) }
func (b *Builder) Int64(name string, v int64) *Builder { return b.Value(name, Int64Type, v) }

func (b *Builder) Uint8(name string, v uint8) *Builder   { return b.Value(name, Uint8Type, v) }
func (b *Builder) Uint16(name string, v uint16) *Builder { return b.Value(name, Uint16Type, v) }
func (b *Builder) Uint32(name string, v uint32) *Builder { return b.Value(name, Uint32Type, v) }
func (b *Builder) Uint64(name string, v uint64) *Builder { return b.Value(name, Uint64Type, v) }

func (b *Builder) Float32(name string, v float32) *Builder { return b.Value(name, Float32Type, v) }
func (b *Builder) Float64(name string, v float64) *Builder { return b.Value(name, Float64Type, v) }

// String adds an owned string member.
func (b *Builder) String(name, v string) *Builder { return b.Value(name, StringType, v) }

// ConstString adds a borrowed string member.
func (b *Builder) ConstString(name, v string) *Builder {
	return b.Value(name, ConstStringType, v)
}

// Binary adds a binary member holding a copy of v.
func (b *Builder) Binary(name string, v []byte) *Builder { return b.Value(name, BinaryType, v) }

// ConstBinary adds a binary member referring to v.
func (b *Builder) ConstBinary(name string, v []byte) *Builder {
	return b.Value(name, ConstBinaryType, v)
}

// Object opens a nested object; members added until the matching End go
// into it.
func (b *Builder) Object(name string) *Builder { return b.open(name, ObjectType) }

// Array opens a nested array.
func (b *Builder) Array(name string) *Builder { return b.open(name, ArrayType) }

func (b *Builder) open(name string, t Type) *Builder {
	if i, ok := b.member(name, t); ok {
		b.stack = append(b.stack, i)
	}
	return b
}

// End closes the innermost open container.
func (b *Builder) End() *Builder {
	if b.err != nil {
		return b
	}
	if len(b.stack) <= 1 {
		b.err = newErr(CodeMissingEnd, "unbalanced End")
		return b
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

// Lit adds l and its members.
func (b *Builder) Lit(l Lit) *Builder {
	if !l.Type.IsContainer() {
		return b.Value(l.Name, l.Type, l.Value)
	}
	b.open(l.Name, l.Type)
	for _, m := range l.Members {
		b.Lit(m)
	}
	return b.End()
}

// Append adds a copy of the tree rooted at sub, which may belong to any
// Doc.
func (b *Builder) Append(sub Node) *Builder {
	if b.err != nil {
		return b
	}
	if err := sub.check(); err != nil {
		b.err = err
		return b
	}
	s := sub.s()
	i, ok := b.member(s.name, s.typ)
	if !ok {
		return b
	}
	b.doc.unlink(i)
	b.doc.release(i)
	c := b.doc.copyFrom(sub.doc, sub.idx)
	b.doc.linkTail(b.stack[len(b.stack)-1], c)
	return b
}

// Build closes any open containers and returns the root. On error the
// partial tree is released.
func (b *Builder) Build() (Node, error) {
	if b.err != nil {
		if b.root != none {
			b.doc.freeTree(b.root)
			b.root = none
		}
		b.stack = nil
		return Node{}, b.err
	}
	if b.root == none {
		return Node{}, newErr(CodeStaleNode, "builder already built")
	}
	res := b.doc.node(b.root)
	b.root = none
	b.stack = nil
	return res, nil
}
