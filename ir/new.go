package ir

import "fmt"

type end struct{}

// End terminates the members of a container in the arguments of New and
// Add.
var End = end{}

type argStream struct {
	args []any
	pos  int
}

func (st *argStream) next() (any, bool) {
	if st.pos >= len(st.args) {
		return nil, false
	}
	a := st.args[st.pos]
	st.pos++
	return a, true
}

// New creates a detached node in a new Doc. See (*Doc).New.
func New(name string, t Type, args ...any) (Node, error) {
	return NewDoc().New(name, t, args...)
}

// New creates a detached node named name of type t in d from the
// self-describing argument list args.
//
// Scalar types take one value: a bool, a Go integer that fits the type, a
// float32 or float64, or a string or []byte for string and binary types.
// Null takes none. Object and Array take groups of
//
//	memberName string, memberType Type, memberValues...
//
// terminated by End. For example
//
//	d.New("root", ir.ObjectType,
//		"n", ir.Int32Type, 5,
//		"pts", ir.ArrayType,
//			"", ir.Float64Type, 1.5,
//			ir.End,
//		ir.End)
//
// On error nothing is left allocated in d.
func (d *Doc) New(name string, t Type, args ...any) (Node, error) {
	if !t.Valid() {
		return Node{}, newErr(CodeNotAType, fmt.Sprint(int(t)))
	}
	if err := CheckName(name); err != nil {
		return Node{}, err
	}
	st := &argStream{args: args}
	i, err := d.build(name, t, st)
	if err != nil {
		return Node{}, err
	}
	if err := st.trailing(); err != nil {
		d.freeTree(i)
		return Node{}, err
	}
	return d.node(i), nil
}

func (st *argStream) trailing() error {
	if st.pos == len(st.args) {
		return nil
	}
	return newErr(CodeTypeMismatch, fmt.Sprintf("unexpected argument %v", st.args[st.pos]))
}

// build allocates a node of type t named name and consumes its values from
// st. name and t have been validated.
func (d *Doc) build(name string, t Type, st *argStream) (int32, error) {
	i := d.alloc(name, t)
	if t == NullType {
		return i, nil
	}
	if !t.IsContainer() {
		v, ok := st.next()
		if !ok {
			d.release(i)
			return none, newErr(CodeTypeMismatch, name+": missing value")
		}
		if err := d.setPayload(i, v); err != nil {
			d.release(i)
			return none, err
		}
		return i, nil
	}
	fail := func(err error) (int32, error) {
		d.freeTree(i)
		return none, err
	}
	for {
		a, ok := st.next()
		if !ok {
			return fail(newErr(CodeMissingEnd, name))
		}
		if _, ok := a.(end); ok {
			return i, nil
		}
		mname, ok := a.(string)
		if !ok {
			return fail(newErr(CodeTypeMismatch, fmt.Sprintf("%s: member name expected, got %v", name, a)))
		}
		ta, ok := st.next()
		if !ok {
			return fail(newErr(CodeMissingEnd, name))
		}
		mt, ok := ta.(Type)
		if !ok {
			return fail(newErr(CodeNotAType, fmt.Sprint(ta)))
		}
		if err := d.checkMember(i, mname, mt); err != nil {
			return fail(err)
		}
		c, err := d.build(mname, mt, st)
		if err != nil {
			return fail(err)
		}
		d.linkTail(i, c)
	}
}
