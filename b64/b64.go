// Package b64 converts binary payloads to and from the text used to embed
// them in text formats: standard base64 with '=' padding.
package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrBadBase64 = errors.New("bad base64")

// Encode returns the padded standard base64 text of d.
func Encode(d []byte) string {
	return base64.StdEncoding.EncodeToString(d)
}

// Decode returns the bytes encoded by s. Surrounding and embedded line
// breaks are ignored.
func Decode(s string) ([]byte, error) {
	res, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadBase64, err)
	}
	return res, nil
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int { return base64.StdEncoding.EncodedLen(n) }
