package parse

import (
	"strconv"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

const (
	intAlphabet   = "0123456789+-"
	floatAlphabet = "0123456789.eE+-"
)

// typedValue returns the type and payload for the text of an unquoted INI
// or CSV value: true and false are Bool, integers Int64, decimals Float64
// and anything else String.
func typedValue(text string) (ir.Type, any) {
	switch text {
	case "true":
		return ir.BoolType, true
	case "false":
		return ir.BoolType, false
	case "":
		return ir.StringType, text
	}
	if onlyOf(text, intAlphabet) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ir.Int64Type, i
		}
	}
	if onlyOf(text, floatAlphabet) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return ir.Float64Type, f
		}
	}
	return ir.StringType, text
}

func onlyOf(s, alphabet string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
