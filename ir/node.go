package ir

import (
	"fmt"
	"iter"
	"math"
)

// Node is a handle onto a node of a Doc. The zero Node refers to nothing.
// Handles are small values and are compared with ==.
type Node struct {
	doc *Doc
	idx int32
	gen uint32
}

func (n Node) check() error {
	if n.doc == nil || n.idx < 0 || int(n.idx) >= len(n.doc.slots) {
		return newErr(CodeStaleNode, "")
	}
	s := &n.doc.slots[n.idx]
	if !s.used || s.gen != n.gen {
		return newErr(CodeStaleNode, "")
	}
	return nil
}

func (n Node) s() *slot { return &n.doc.slots[n.idx] }

// Valid reports whether n refers to a live node.
func (n Node) Valid() bool { return n.check() == nil }

// Doc returns the arena holding n.
func (n Node) Doc() *Doc { return n.doc }

func (n Node) Name() string {
	if !n.Valid() {
		return ""
	}
	return n.s().name
}

// Type returns the type of n, NullType if n is not valid.
func (n Node) Type() Type {
	if !n.Valid() {
		return NullType
	}
	return n.s().typ
}

// Len returns the number of children of a container.
func (n Node) Len() int {
	if !n.Valid() {
		return 0
	}
	return n.s().count
}

func (n Node) link(f func(*slot) int32) Node {
	if !n.Valid() {
		return Node{}
	}
	i := f(n.s())
	if i == none {
		return Node{}
	}
	return n.doc.node(i)
}

func (n Node) Parent() Node     { return n.link(func(s *slot) int32 { return s.parent }) }
func (n Node) FirstChild() Node { return n.link(func(s *slot) int32 { return s.first }) }
func (n Node) LastChild() Node  { return n.link(func(s *slot) int32 { return s.last }) }
func (n Node) Next() Node       { return n.link(func(s *slot) int32 { return s.next }) }
func (n Node) Prev() Node       { return n.link(func(s *slot) int32 { return s.prev }) }

// IsDetached reports whether n is the root of its tree.
func (n Node) IsDetached() bool {
	return n.Valid() && n.s().parent == none
}

// Root returns the root of the tree containing n.
func (n Node) Root() Node {
	if !n.Valid() {
		return Node{}
	}
	i := n.idx
	for n.doc.slots[i].parent != none {
		i = n.doc.slots[i].parent
	}
	return n.doc.node(i)
}

// Children iterates over the children of n in order. Mutating the child
// list of n during iteration is not supported.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := n.FirstChild(); c.Valid(); c = c.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Index returns the position of n among its siblings, or -1 if n is
// detached.
func (n Node) Index() int {
	if !n.Valid() || n.s().parent == none {
		return -1
	}
	i := 0
	for c := n.s().prev; c != none; c = n.doc.slots[c].prev {
		i++
	}
	return i
}

func (n Node) scalar(ok func(Type) bool) (*slot, error) {
	if err := n.check(); err != nil {
		return nil, err
	}
	s := n.s()
	if !ok(s.typ) {
		return nil, newErr(CodeTypeMismatch, fmt.Sprintf("%s is %s", s.name, s.typ))
	}
	return s, nil
}

func (n Node) Bool() (bool, error) {
	s, err := n.scalar(func(t Type) bool { return t == BoolType })
	if err != nil {
		return false, err
	}
	return s.bits != 0, nil
}

// Int64 returns the value of a signed integer node of any width.
func (n Node) Int64() (int64, error) {
	s, err := n.scalar(Type.IsSigned)
	if err != nil {
		return 0, err
	}
	return int64(s.bits), nil
}

// Uint64 returns the value of an unsigned integer node of any width.
func (n Node) Uint64() (uint64, error) {
	s, err := n.scalar(Type.IsUnsigned)
	if err != nil {
		return 0, err
	}
	return s.bits, nil
}

// Float64 returns the value of a floating point node of either width.
func (n Node) Float64() (float64, error) {
	s, err := n.scalar(Type.IsFloat)
	if err != nil {
		return 0, err
	}
	if s.typ == Float32Type {
		return float64(math.Float32frombits(uint32(s.bits))), nil
	}
	return math.Float64frombits(s.bits), nil
}

// Text returns the payload of a string node.
func (n Node) Text() (string, error) {
	s, err := n.scalar(Type.IsString)
	if err != nil {
		return "", err
	}
	return s.str, nil
}

// Bytes returns the payload of a binary node. The result of an owned
// Binary node must not be modified.
func (n Node) Bytes() ([]byte, error) {
	s, err := n.scalar(Type.IsBinary)
	if err != nil {
		return nil, err
	}
	return s.bin, nil
}

// Value returns the payload of n as a Go value of the type matching
// n.Type(): bool, int8..int64, uint8..uint64, float32, float64, string or
// []byte. It returns nil for containers, Null and invalid nodes.
func (n Node) Value() any {
	if !n.Valid() {
		return nil
	}
	return n.doc.value(n.idx)
}
