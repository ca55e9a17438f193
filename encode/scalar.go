package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/vdoc-go/vdoc/b64"
	"github.com/vdoc-go/vdoc/ir"
)

// formatFloat formats f so that it reads back as a float: the result
// always has a decimal point or an exponent.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func floatBits(t ir.Type) int {
	if t == ir.Float32Type {
		return 32
	}
	return 64
}

// text returns the plain text of a scalar. Null is empty and binary
// payloads are base64.
func text(n ir.Node) string {
	t := n.Type()
	switch {
	case t == ir.BoolType:
		v, _ := n.Bool()
		return strconv.FormatBool(v)
	case t.IsSigned():
		v, _ := n.Int64()
		return strconv.FormatInt(v, 10)
	case t.IsUnsigned():
		v, _ := n.Uint64()
		return strconv.FormatUint(v, 10)
	case t.IsFloat():
		v, _ := n.Float64()
		return formatFloat(v, floatBits(t))
	case t.IsString():
		v, _ := n.Text()
		return v
	case t.IsBinary():
		v, _ := n.Bytes()
		return b64.Encode(v)
	}
	return ""
}

// allScalars reports whether every child of n is a scalar.
func allScalars(n ir.Node) bool {
	for c := range n.Children() {
		if c.Type().IsContainer() {
			return false
		}
	}
	return true
}
