// Package distance encodes words as sequences of gaps between adjacent letters.
//
// The gap from one letter to the next is measured forward around the
// alphabet, so rotating every letter of a word by the same amount leaves its
// sequence unchanged. Two words with equal sequences are rotations of each
// other.
package distance

import (
	"rotx/internal/rot"
	"strings"
)

// Seq is the gap sequence of a word. Element i is the forward distance
// from letter i to letter i+1, in the range [0, 25].
type Seq []byte

// Of returns the gap sequence of word, which must consist of ASCII letters
// only. Case is ignored. A word shorter than two letters has an empty sequence.
func Of(word string) Seq {
	if len(word) < 2 {
		return Seq{}
	}

	seq := make(Seq, 0, len(word)-1)
	for i := 1; i < len(word); i++ {
		seq = append(seq, byte(rot.Dist(rune(word[i-1]), rune(word[i]))))
	}
	return seq
}

// Key returns s in a form usable as a map key.
func (s Seq) Key() string {
	return string(s)
}

// Equal reports whether s and t hold the same gaps.
func (s Seq) Equal(t Seq) bool {
	return s.Key() == t.Key()
}

func letter(r rune) rune {
	if _, ok := rot.Pos(r); ok {
		return r
	}
	// Drop everything else
	return -1
}

// Clean strips everything but ASCII letters from token, keeping case.
func Clean(token string) string {
	return strings.Map(letter, token)
}

// IsWord reports whether s is non-empty and made of ASCII letters only.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := rot.Pos(r); !ok {
			return false
		}
	}
	return true
}
