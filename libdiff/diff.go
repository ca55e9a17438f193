// Package libdiff reports the differences between two trees as an edit
// script over their tree listings.
package libdiff

import (
	"bytes"
	"strings"

	"github.com/vdoc-go/vdoc/encode"
	"github.com/vdoc-go/vdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Keep Op = iota
	Delete
	Insert
)

// Line is one line of a listing with the edit applying to it.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	switch l.Op {
	case Delete:
		return "- " + l.Text
	case Insert:
		return "+ " + l.Text
	}
	return "  " + l.Text
}

// Diff returns the edits turning the listing of from into the listing of
// to, or nil if the trees are equal.
func Diff(from, to ir.Node) ([]Line, error) {
	if ir.Equal(from, to) {
		return nil, nil
	}
	a, err := listing(from)
	if err != nil {
		return nil, err
	}
	b, err := listing(to)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Keep
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res, nil
}

// Changed reports whether lines hold an insertion or a deletion.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Keep {
			return true
		}
	}
	return false
}

func listing(n ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Print(n, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
