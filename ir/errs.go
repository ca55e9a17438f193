package ir

import (
	"errors"
	"fmt"

	"github.com/vdoc-go/vdoc/ir/dpath"
)

// Code classifies a failure of a tree operation.
type Code int

const (
	OK Code = iota
	CodeNotAType
	CodeTooManyMembers
	CodeArrayTypeMismatch
	CodeDuplicateName
	CodeStaleNode
	CodeNotFound
	CodeIndexOutOfRange
	CodeNameInvalid
	CodeNotContainer
	CodeNotScalar
	CodeTypeMismatch
	CodeInvalidDepth
	CodeBadPath
	CodeMissingEnd
	CodeAttached
	CodeCycle
	CodeUnknown
)

var (
	ErrNotAType          = errors.New("not a type")
	ErrTooManyMembers    = errors.New("too many members")
	ErrArrayTypeMismatch = errors.New("value not same type as array")
	ErrDuplicateName     = errors.New("duplicate name")
	ErrStaleNode         = errors.New("nil or deleted node")
	ErrNotFound          = errors.New("not found")
	ErrNameInvalid       = errors.New("name too long or contains illegal characters")
	ErrNotContainer      = errors.New("not a container")
	ErrNotScalar         = errors.New("not a scalar")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrInvalidDepth      = errors.New("invalid depth")
	ErrBadPath           = dpath.ErrBadPath
	ErrMissingEnd        = errors.New("missing end of members")
	ErrAttached          = errors.New("node already attached")
	ErrCycle             = errors.New("node would contain itself")
)

var codeErrs = map[Code]error{
	CodeNotAType:          ErrNotAType,
	CodeTooManyMembers:    ErrTooManyMembers,
	CodeArrayTypeMismatch: ErrArrayTypeMismatch,
	CodeDuplicateName:     ErrDuplicateName,
	CodeStaleNode:         ErrStaleNode,
	CodeNotFound:          ErrNotFound,
	CodeIndexOutOfRange:   ErrNotFound,
	CodeNameInvalid:       ErrNameInvalid,
	CodeNotContainer:      ErrNotContainer,
	CodeNotScalar:         ErrNotScalar,
	CodeTypeMismatch:      ErrTypeMismatch,
	CodeInvalidDepth:      ErrInvalidDepth,
	CodeBadPath:           ErrBadPath,
	CodeMissingEnd:        ErrMissingEnd,
	CodeAttached:          ErrAttached,
	CodeCycle:             ErrCycle,
}

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case CodeIndexOutOfRange:
		return "index out of range"
	}
	if err, ok := codeErrs[c]; ok {
		return err.Error()
	}
	return "unknown error"
}

// Error is the error returned by tree operations. Ident holds the
// offending name, path or value.
type Error struct {
	Code  Code
	Ident string
}

func (e *Error) Error() string {
	if e.Ident == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s. Instance: %q.", e.Code, e.Ident)
}

func (e *Error) Unwrap() error { return codeErrs[e.Code] }

func newErr(c Code, ident string) error {
	return &Error{Code: c, Ident: ident}
}

// CodeOf returns the Code carried by err, OK for a nil error and
// CodeUnknown for errors not produced by this package.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	for c, sentinel := range codeErrs {
		if c != CodeIndexOutOfRange && errors.Is(err, sentinel) {
			return c
		}
	}
	return CodeUnknown
}
