package ir

// SetValue replaces the payload of the scalar at path with v, which must
// be a Go value accepted by New for the node's type.
func (n Node) SetValue(path string, v any) error {
	target, err := n.Resolve(path)
	if err != nil {
		return err
	}
	return n.doc.setPayload(target.idx, v)
}

// SetString replaces the payload of the String or ConstString node at
// path.
func (n Node) SetString(path, v string) error {
	target, err := n.Resolve(path)
	if err != nil {
		return err
	}
	if !target.s().typ.IsString() {
		return newErr(CodeTypeMismatch, path)
	}
	return n.doc.setPayload(target.idx, v)
}

// SetBinary replaces the payload of the Binary or ConstBinary node at
// path. A Binary node keeps a copy of v, a ConstBinary node refers to it.
func (n Node) SetBinary(path string, v []byte) error {
	target, err := n.Resolve(path)
	if err != nil {
		return err
	}
	if !target.s().typ.IsBinary() {
		return newErr(CodeTypeMismatch, path)
	}
	return n.doc.setPayload(target.idx, v)
}
