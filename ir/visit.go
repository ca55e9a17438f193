package ir

// Visit walks the tree rooted at n depth first. f is called before the
// children of a node with isPost false and after them with isPost true.
// The children are visited only if the pre call returns true.
func (n Node) Visit(f func(n Node, isPost bool) (bool, error)) error {
	if err := n.check(); err != nil {
		return err
	}
	type item struct {
		node Node
		post bool
	}
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.post {
			if _, err := f(it.node, true); err != nil {
				return err
			}
			continue
		}
		dive, err := f(it.node, false)
		if err != nil {
			return err
		}
		stack = append(stack, item{node: it.node, post: true})
		if !dive {
			continue
		}
		for c := it.node.LastChild(); c.Valid(); c = c.Prev() {
			stack = append(stack, item{node: c})
		}
	}
	return nil
}

// Depth returns the number of nested container levels in the tree rooted
// at n: 0 for a scalar, 1 for a container holding only scalars.
func (n Node) Depth() int {
	deepest := 0
	depth := 0
	_ = n.Visit(func(c Node, isPost bool) (bool, error) {
		if !c.Type().IsContainer() {
			return false, nil
		}
		if isPost {
			depth--
			return false, nil
		}
		depth++
		deepest = max(deepest, depth)
		return true, nil
	})
	return deepest
}
