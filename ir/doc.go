// Package ir provides vdoc's variant tree: self-describing nodes of a closed
// set of types, arranged in objects and arrays and addressed by dotted paths.
//
// Nodes live in a Doc, an arena of slots linked by index. A Node is a
// handle onto a slot; deleting a node invalidates its handle, and further
// use of it fails with ErrStaleNode.
package ir

import "math"

const none int32 = -1

// MaxMembers is the largest number of children a container may hold.
const MaxMembers = math.MaxUint32

type slot struct {
	gen  uint32
	used bool

	name string
	typ  Type

	parent, first, last, next, prev int32
	count                           int

	bits uint64
	str  string
	bin  []byte
}

// Doc is an arena holding the nodes of one or more trees. A Doc is not
// safe for concurrent use.
type Doc struct {
	slots []slot
	free  []int32
	live  int
}

func NewDoc() *Doc { return &Doc{} }

// Len returns the number of live nodes in d.
func (d *Doc) Len() int { return d.live }

func (d *Doc) alloc(name string, t Type) int32 {
	var i int32
	if n := len(d.free); n > 0 {
		i = d.free[n-1]
		d.free = d.free[:n-1]
	} else {
		d.slots = append(d.slots, slot{})
		i = int32(len(d.slots) - 1)
	}
	gen := d.slots[i].gen
	d.slots[i] = slot{
		gen:    gen,
		used:   true,
		name:   name,
		typ:    t,
		parent: none,
		first:  none,
		last:   none,
		next:   none,
		prev:   none,
	}
	d.live++
	return i
}

func (d *Doc) release(i int32) {
	gen := d.slots[i].gen + 1
	d.slots[i] = slot{gen: gen}
	d.free = append(d.free, i)
	d.live--
}

func (d *Doc) node(i int32) Node {
	return Node{doc: d, idx: i, gen: d.slots[i].gen}
}

// subtree returns i and all its descendants in pre-order.
func (d *Doc) subtree(i int32) []int32 {
	var res []int32
	stack := []int32{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, j)
		for c := d.slots[j].last; c != none; c = d.slots[c].prev {
			stack = append(stack, c)
		}
	}
	return res
}

// freeTree releases i and its descendants, descendants first. i must
// already be unlinked from any parent.
func (d *Doc) freeTree(i int32) {
	all := d.subtree(i)
	for k := len(all) - 1; k >= 0; k-- {
		d.release(all[k])
	}
}

func (d *Doc) linkTail(parent, child int32) {
	p := &d.slots[parent]
	c := &d.slots[child]
	c.parent = parent
	c.next = none
	c.prev = p.last
	if p.last == none {
		p.first = child
	} else {
		d.slots[p.last].next = child
	}
	p.last = child
	p.count++
}

func (d *Doc) unlink(child int32) {
	c := &d.slots[child]
	if c.parent == none {
		return
	}
	p := &d.slots[c.parent]
	if c.prev == none {
		p.first = c.next
	} else {
		d.slots[c.prev].next = c.next
	}
	if c.next == none {
		p.last = c.prev
	} else {
		d.slots[c.next].prev = c.prev
	}
	p.count--
	c.parent, c.next, c.prev = none, none, none
}

func (d *Doc) findChild(parent int32, name string) int32 {
	for c := d.slots[parent].first; c != none; c = d.slots[c].next {
		if d.slots[c].name == name {
			return c
		}
	}
	return none
}

// elemType returns the type of the first non-null child of an array,
// skipping ignore.
func (d *Doc) elemType(arr, ignore int32) (Type, bool) {
	for c := d.slots[arr].first; c != none; c = d.slots[c].next {
		if c == ignore {
			continue
		}
		if t := d.slots[c].typ; t != NullType {
			return t, true
		}
	}
	return NullType, false
}

// checkMember reports whether a node named name of type t may be linked
// at the tail of parent.
func (d *Doc) checkMember(parent int32, name string, t Type) error {
	if !t.Valid() {
		return newErr(CodeNotAType, name)
	}
	if err := CheckName(name); err != nil {
		return err
	}
	p := &d.slots[parent]
	if uint64(p.count) >= MaxMembers {
		return newErr(CodeTooManyMembers, p.name)
	}
	switch p.typ {
	case ObjectType:
		if name != "" && d.findChild(parent, name) != none {
			return newErr(CodeDuplicateName, name)
		}
	case ArrayType:
		if t == NullType {
			return nil
		}
		if et, ok := d.elemType(parent, none); ok && et != t {
			return newErr(CodeArrayTypeMismatch, memberIdent(name, t))
		}
	default:
		return newErr(CodeNotContainer, p.name)
	}
	return nil
}

func memberIdent(name string, t Type) string {
	if name == "" {
		return t.String()
	}
	return name
}

// copyFrom deep copies the subtree at src in sd into d and returns the
// detached copy. sd may be d.
func (d *Doc) copyFrom(sd *Doc, src int32) int32 {
	type item struct{ src, dstParent int32 }
	root := none
	stack := []item{{src, none}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := sd.slots[it.src]
		dst := d.alloc(s.name, s.typ)
		ds := &d.slots[dst]
		ds.bits = s.bits
		ds.str = s.str
		switch s.typ {
		case BinaryType:
			ds.bin = cloneBytes(s.bin)
		case ConstBinaryType:
			ds.bin = s.bin
		}
		if it.dstParent == none {
			root = dst
		} else {
			d.linkTail(it.dstParent, dst)
		}
		for c := s.last; c != none; c = sd.slots[c].prev {
			stack = append(stack, item{c, dst})
		}
	}
	return root
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	res := make([]byte, len(b))
	copy(res, b)
	return res
}
