package ir

import "strings"

// MaxNameLen is the maximum length in bytes of a node name.
const MaxNameLen = 100

const reservedNameChars = "\"'()*+,-.\\[]"

// CheckName returns an error wrapping ErrNameInvalid if name is too long or
// contains a control character or one of the characters reserved for paths.
// The empty name is valid.
func CheckName(name string) error {
	if len(name) > MaxNameLen {
		return newErr(CodeNameInvalid, name)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x20 || c == 0x7f || strings.IndexByte(reservedNameChars, c) >= 0 {
			return newErr(CodeNameInvalid, name)
		}
	}
	return nil
}
