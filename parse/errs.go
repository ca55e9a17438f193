package parse

import (
	"errors"
	"fmt"

	"github.com/vdoc-go/vdoc/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrTooDeep   = errors.New("nesting too deep")
	ErrBadFormat = format.ErrBadFormat
)

func lineCol(d []byte, off int) (int, int) {
	line, col := 1, 1
	for _, c := range d[:min(off, len(d))] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func errorAt(d []byte, off int, f string, args ...any) error {
	line, col := lineCol(d, off)
	return fmt.Errorf("%w: %d:%d: %s", ErrParse, line, col, fmt.Sprintf(f, args...))
}
