// Package rotate applies a single rotation to every letter of a text.
package rotate

import (
	"rotx/internal/rot"
	"strings"
)

// Decode shifts every ASCII letter of s forward by n positions, wrapping
// within its own case. n may be negative or larger than the alphabet.
// All other bytes are copied unchanged, so s need not be valid UTF-8.
func Decode(s string, n int) string {
	n = rot.Norm(n)
	if n == 0 {
		return s
	}

	new := &strings.Builder{}
	new.Grow(len(s))

	// ASCII letters never occur inside a multi-byte UTF-8 sequence.
	for i := 0; i < len(s); i++ {
		new.WriteByte(byte(rot.Rune(rune(s[i]), n)))
	}
	return new.String()
}

// Encode shifts every ASCII letter of s backward by n positions, undoing
// Decode: Decode(Encode(s, n), n) == s.
func Encode(s string, n int) string {
	return Decode(s, -n)
}
