package ir

import (
	"bytes"
	"cmp"
	"math"
	"strings"
)

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes are ordered by type, then payload, then number of children, then
// children in order, each child by name and then recursively. The names
// of a and b themselves are not compared. Invalid nodes sort first.
func Compare(a, b Node) int {
	type pair struct {
		a, b Node
		top  bool
	}
	stack := []pair{{a, b, true}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c := compareOne(p.a, p.b, p.top); c != 0 {
			return c
		}
		if !p.a.Valid() {
			continue
		}
		ca, cb := p.a.LastChild(), p.b.LastChild()
		for ca.Valid() {
			stack = append(stack, pair{a: ca, b: cb})
			ca, cb = ca.Prev(), cb.Prev()
		}
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b Node) bool { return Compare(a, b) == 0 }

func compareOne(a, b Node, top bool) int {
	va, vb := a.Valid(), b.Valid()
	switch {
	case !va && !vb:
		return 0
	case !va:
		return -1
	case !vb:
		return 1
	}
	sa, sb := a.s(), b.s()
	if !top {
		if c := strings.Compare(sa.name, sb.name); c != 0 {
			return c
		}
	}
	if sa.typ != sb.typ {
		return cmp.Compare(sa.typ, sb.typ)
	}
	switch t := sa.typ; {
	case t == BoolType, t.IsUnsigned():
		if c := cmp.Compare(sa.bits, sb.bits); c != 0 {
			return c
		}
	case t.IsSigned():
		if c := cmp.Compare(int64(sa.bits), int64(sb.bits)); c != 0 {
			return c
		}
	case t == Float64Type:
		if c := cmp.Compare(math.Float64frombits(sa.bits), math.Float64frombits(sb.bits)); c != 0 {
			return c
		}
	case t == Float32Type:
		if c := cmp.Compare(math.Float32frombits(uint32(sa.bits)), math.Float32frombits(uint32(sb.bits))); c != 0 {
			return c
		}
	case t.IsString():
		if c := strings.Compare(sa.str, sb.str); c != 0 {
			return c
		}
	case t.IsBinary():
		if c := bytes.Compare(sa.bin, sb.bin); c != 0 {
			return c
		}
	}
	return cmp.Compare(sa.count, sb.count)
}
