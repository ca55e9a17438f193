package encode

import (
	"bytes"
	"strings"

	"github.com/vdoc-go/vdoc/ir"
)

// MustString returns node encoded with opts, JSON by default, trimmed of
// surrounding space. It panics on error.
func MustString(node ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
