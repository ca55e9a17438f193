package ir

import (
	"fmt"
	"strconv"
)

func (n Node) container(path string) (Node, error) {
	target, err := n.Resolve(path)
	if err != nil {
		return Node{}, err
	}
	if !target.s().typ.IsContainer() {
		return Node{}, newErr(CodeNotContainer, path)
	}
	return target, nil
}

// Add builds a node from name, t and args as New does and appends it to
// the container at path.
func (n Node) Add(path, name string, t Type, args ...any) (Node, error) {
	target, err := n.container(path)
	if err != nil {
		return Node{}, err
	}
	d := n.doc
	if err := d.checkMember(target.idx, name, t); err != nil {
		return Node{}, err
	}
	st := &argStream{args: args}
	c, err := d.build(name, t, st)
	if err != nil {
		return Node{}, err
	}
	if err := st.trailing(); err != nil {
		d.freeTree(c)
		return Node{}, err
	}
	d.linkTail(target.idx, c)
	return d.node(c), nil
}

// Delete removes the node at path and releases it with all its
// descendants. Deleting "." releases the whole tree under n.
func (n Node) Delete(path string) error {
	target, err := n.Resolve(path)
	if err != nil {
		return err
	}
	n.doc.unlink(target.idx)
	n.doc.freeTree(target.idx)
	return nil
}

// Copy returns a detached deep copy of the node at path, in the same Doc.
// Owned payloads are duplicated; borrowed ones are shared.
func (n Node) Copy(path string) (Node, error) {
	src, err := n.Resolve(path)
	if err != nil {
		return Node{}, err
	}
	return n.doc.node(n.doc.copyFrom(n.doc, src.idx)), nil
}

// Detach unlinks the node at path from its parent without releasing it.
func (n Node) Detach(path string) (Node, error) {
	target, err := n.Resolve(path)
	if err != nil {
		return Node{}, err
	}
	n.doc.unlink(target.idx)
	return target, nil
}

// Rename sets the name of the node at path. The new name must be valid and,
// within an object, not already taken by a sibling.
func (n Node) Rename(path, name string) error {
	target, err := n.Resolve(path)
	if err != nil {
		return err
	}
	if err := CheckName(name); err != nil {
		return err
	}
	d := n.doc
	s := target.s()
	if s.parent != none && name != "" && d.slots[s.parent].typ == ObjectType {
		if c := d.findChild(s.parent, name); c != none && c != target.idx {
			return newErr(CodeDuplicateName, name)
		}
	}
	s.name = name
	return nil
}

// Append links the detached tree sub at the tail of the container at path
// and returns its handle there. If sub belongs to another Doc it is moved
// into this one and the original handle becomes stale.
func (n Node) Append(path string, sub Node) (Node, error) {
	target, err := n.container(path)
	if err != nil {
		return Node{}, err
	}
	if err := sub.check(); err != nil {
		return Node{}, err
	}
	d := n.doc
	ss := sub.s()
	if ss.parent != none {
		return Node{}, newErr(CodeAttached, ss.name)
	}
	if sub.doc == d {
		for i := target.idx; i != none; i = d.slots[i].parent {
			if i == sub.idx {
				return Node{}, newErr(CodeCycle, ss.name)
			}
		}
	}
	if err := d.checkMember(target.idx, ss.name, ss.typ); err != nil {
		return Node{}, err
	}
	idx := sub.idx
	if sub.doc != d {
		idx = d.copyFrom(sub.doc, sub.idx)
		sub.doc.freeTree(sub.idx)
	}
	d.linkTail(target.idx, idx)
	return d.node(idx), nil
}

// Replace puts the detached tree sub in place of the node at path and
// returns the replaced node, now detached. The node at path must have a
// parent; sub is checked against its siblings as Append does.
func (n Node) Replace(path string, sub Node) (Node, error) {
	target, err := n.Resolve(path)
	if err != nil {
		return Node{}, err
	}
	if err := sub.check(); err != nil {
		return Node{}, err
	}
	d := n.doc
	ts, ss := target.s(), sub.s()
	if ts.parent == none {
		return Node{}, newErr(CodeNotContainer, path)
	}
	if ss.parent != none {
		return Node{}, newErr(CodeAttached, ss.name)
	}
	if sub.doc == d {
		for i := target.idx; i != none; i = d.slots[i].parent {
			if i == sub.idx {
				return Node{}, newErr(CodeCycle, ss.name)
			}
		}
	}
	if err := CheckName(ss.name); err != nil {
		return Node{}, err
	}
	parent := ts.parent
	switch d.slots[parent].typ {
	case ObjectType:
		if c := d.findChild(parent, ss.name); ss.name != "" && c != none && c != target.idx {
			return Node{}, newErr(CodeDuplicateName, ss.name)
		}
	case ArrayType:
		if et, ok := d.elemType(parent, target.idx); ok && ss.typ != NullType && ss.typ != et {
			return Node{}, newErr(CodeArrayTypeMismatch, memberIdent(ss.name, ss.typ))
		}
	}
	idx := sub.idx
	if sub.doc != d {
		idx = d.copyFrom(sub.doc, sub.idx)
		sub.doc.freeTree(sub.idx)
	}
	ts = &d.slots[target.idx]
	is := &d.slots[idx]
	is.parent, is.prev, is.next = ts.parent, ts.prev, ts.next
	p := &d.slots[parent]
	if ts.prev == none {
		p.first = idx
	} else {
		d.slots[ts.prev].next = idx
	}
	if ts.next == none {
		p.last = idx
	} else {
		d.slots[ts.next].prev = idx
	}
	ts.parent, ts.prev, ts.next = none, none, none
	return target, nil
}

type squashPlan struct {
	anchor    int32
	leaves    []int32
	dissolved []int32
}

// Squash flattens the container at path so that no container lies more
// than maxDepth levels below it, counting the container itself as level 1.
// Each container at level maxDepth takes the scalars found beneath it, in
// depth-first order and in place of the nested containers holding them;
// those containers are released. Squash checks the resulting members of
// every such container before changing anything.
func (n Node) Squash(path string, maxDepth int) error {
	if maxDepth < 1 {
		return newErr(CodeInvalidDepth, strconv.Itoa(maxDepth))
	}
	target, err := n.container(path)
	if err != nil {
		return err
	}
	d := n.doc
	var plans []squashPlan
	for _, a := range d.containersAt(target.idx, maxDepth) {
		p := d.planSquash(a)
		if err := d.checkSquash(p); err != nil {
			return err
		}
		plans = append(plans, p)
	}
	for _, p := range plans {
		a := &d.slots[p.anchor]
		a.first, a.last, a.count = none, none, 0
		for _, l := range p.leaves {
			d.linkTail(p.anchor, l)
		}
		for _, c := range p.dissolved {
			d.release(c)
		}
	}
	return nil
}

// containersAt returns the containers at the given depth below root, where
// root is at depth 1.
func (d *Doc) containersAt(root int32, depth int) []int32 {
	type item struct {
		idx   int32
		depth int
	}
	var res []int32
	stack := []item{{root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !d.slots[it.idx].typ.IsContainer() {
			continue
		}
		if it.depth == depth {
			res = append(res, it.idx)
			continue
		}
		for c := d.slots[it.idx].last; c != none; c = d.slots[c].prev {
			stack = append(stack, item{c, it.depth + 1})
		}
	}
	return res
}

func (d *Doc) planSquash(anchor int32) squashPlan {
	p := squashPlan{anchor: anchor}
	var stack []int32
	for c := d.slots[anchor].last; c != none; c = d.slots[c].prev {
		stack = append(stack, c)
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !d.slots[i].typ.IsContainer() {
			p.leaves = append(p.leaves, i)
			continue
		}
		p.dissolved = append(p.dissolved, i)
		for c := d.slots[i].last; c != none; c = d.slots[c].prev {
			stack = append(stack, c)
		}
	}
	return p
}

func (d *Doc) checkSquash(p squashPlan) error {
	a := &d.slots[p.anchor]
	if uint64(len(p.leaves)) > MaxMembers {
		return newErr(CodeTooManyMembers, a.name)
	}
	if a.typ == ObjectType {
		seen := make(map[string]bool, len(p.leaves))
		for _, l := range p.leaves {
			name := d.slots[l].name
			if name == "" {
				continue
			}
			if seen[name] {
				return newErr(CodeDuplicateName, name)
			}
			seen[name] = true
		}
		return nil
	}
	et := NullType
	for _, l := range p.leaves {
		t := d.slots[l].typ
		switch {
		case t == NullType:
		case et == NullType:
			et = t
		case t != et:
			return newErr(CodeArrayTypeMismatch, fmt.Sprintf("%s in %s", memberIdent(d.slots[l].name, t), a.name))
		}
	}
	return nil
}
