// Package textconv provides utilities for turning raw bytes from disk or from
// git into text that is safe to serve as UTF-8.
package textconv

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Replacement is written in place of every invalid UTF-8 sequence.
const Replacement = "�"

// FromBytes decodes b as UTF-8.
// Invalid sequences are replaced with U+FFFD; decoding never fails.
func FromBytes(b []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), Replacement)
	}
	return string(out)
}

// FromString is FromBytes for output that was already collected as a string.
func FromString(s string) string {
	return FromBytes([]byte(s))
}
