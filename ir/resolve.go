package ir

import "github.com/vdoc-go/vdoc/ir/dpath"

// Resolve returns the node addressed by path relative to n.
//
// A name segment selects the first child with that name, in objects and in
// arrays alike. An index segment selects the child at that position in any
// container. Resolution fails with ErrNotFound when a segment has no match
// or the path descends through a scalar; out of range indices carry
// CodeIndexOutOfRange.
func (n Node) Resolve(path string) (Node, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return Node{}, err
	}
	return n.resolve(p, path)
}

// ResolvePath is like Resolve for a parsed path.
func (n Node) ResolvePath(p *dpath.DPath) (Node, error) {
	return n.resolve(p, p.String())
}

func (n Node) resolve(p *dpath.DPath, ident string) (Node, error) {
	if err := n.check(); err != nil {
		return Node{}, err
	}
	d := n.doc
	cur := n.idx
	for x := p; x != nil; x = x.Next {
		s := &d.slots[cur]
		if !s.typ.IsContainer() {
			return Node{}, newErr(CodeNotFound, ident)
		}
		if x.Index != nil {
			k := *x.Index
			if k >= s.count {
				return Node{}, newErr(CodeIndexOutOfRange, ident)
			}
			c := s.first
			for ; k > 0; k-- {
				c = d.slots[c].next
			}
			cur = c
			continue
		}
		c := d.findChild(cur, *x.Field)
		if c == none {
			return Node{}, newErr(CodeNotFound, ident)
		}
		cur = c
	}
	return d.node(cur), nil
}

// Get is like Resolve but returns the zero Node when path does not
// resolve.
func (n Node) Get(path string) Node {
	res, err := n.Resolve(path)
	if err != nil {
		return Node{}
	}
	return res
}

// Path returns the path of n from the root of its tree. Members of objects
// are addressed by name when they have one, array elements by index.
func (n Node) Path() *dpath.DPath {
	if !n.Valid() {
		return nil
	}
	d := n.doc
	var res *dpath.DPath
	for i := n.idx; d.slots[i].parent != none; i = d.slots[i].parent {
		s := &d.slots[i]
		var seg *dpath.DPath
		if d.slots[s.parent].typ == ObjectType && s.name != "" {
			seg = dpath.Field(s.name)
		} else {
			seg = dpath.Index(d.node(i).Index())
		}
		seg.Next = res
		res = seg
	}
	return res
}
