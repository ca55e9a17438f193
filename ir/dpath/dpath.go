// Package dpath parses the dotted and indexed paths that address nodes
// within a tree.
//
// Path syntax:
//   - "" or "." → the start node itself
//   - "a.b" → member "b" of member "a"
//   - "a[0]" → first child of member "a"
//   - ".[1].x" → member "x" of the second child
//
// A leading "." is optional and empty segments, such as those produced by
// adjacent delimiters, are skipped.
package dpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// DPath is one segment of a parsed path. Exactly one of Field and Index is
// set. A nil *DPath addresses the start node.
type DPath struct {
	Field *string
	Index *int
	Next  *DPath
}

// Field returns a single field segment.
func Field(name string) *DPath { return &DPath{Field: &name} }

// Index returns a single index segment.
func Index(i int) *DPath { return &DPath{Index: &i} }

// Parse parses a path. The start node path ("" or ".") parses to nil.
// Parsing does not retain or modify p.
func Parse(p string) (*DPath, error) {
	var head, tail *DPath
	add := func(seg *DPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	i := 0
	for i < len(p) {
		switch p[i] {
		case '.':
			i++
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrBadPath, p)
			}
			n, err := parseIndex(p[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, p)
			}
			add(Index(n))
			i += j + 1
		case ']':
			return nil, fmt.Errorf("%w: unexpected ']' at offset %d in %q", ErrBadPath, i, p)
		default:
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '[' && p[j] != ']' {
				j++
			}
			add(Field(p[i:j]))
			i = j
		}
	}
	return head, nil
}

// MustParse is like Parse but panics on error.
func MustParse(p string) *DPath {
	res, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return res
}

func parseIndex(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("%w: empty index", ErrBadPath)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: index %q is not a number", ErrBadPath, digits)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q: %w", ErrBadPath, digits, err)
	}
	return n, nil
}

// String returns the canonical form of the path, "." for the start node.
func (p *DPath) String() string {
	if p == nil {
		return "."
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil && buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(x.SegmentString())
	}
	return buf.String()
}

// SegmentString returns the representation of the first segment only.
func (p *DPath) SegmentString() string {
	switch {
	case p == nil:
		return ""
	case p.Field != nil:
		return *p.Field
	case p.Index != nil:
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

// Len returns the number of segments.
func (p *DPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the final segment, or nil for the start node.
func (p *DPath) Last() *DPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of p without its final segment.
func (p *DPath) Parent() *DPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := p.copyOne()
	tail := res
	for x := p.Next; x.Next != nil; x = x.Next {
		tail.Next = x.copyOne()
		tail = tail.Next
	}
	return res
}

// Join returns a new path consisting of the segments of p followed by
// those of q. Neither argument is modified.
func (p *DPath) Join(q *DPath) *DPath {
	var head, tail *DPath
	for _, src := range []*DPath{p, q} {
		for x := src; x != nil; x = x.Next {
			c := x.copyOne()
			if head == nil {
				head = c
			} else {
				tail.Next = c
			}
			tail = c
		}
	}
	return head
}

func (p *DPath) copyOne() *DPath {
	res := &DPath{}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	return res
}
