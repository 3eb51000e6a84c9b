// Package rot provides functions for rotating single letters by a given number of positions.
package rot

// Letters is the size of the alphabet every rotation works on.
const Letters = 26

// Norm reduces n to the range [0, 25].
func Norm(n int) int {
	n %= Letters
	if n < 0 {
		n += Letters
	}
	return n
}

// Pos returns the alphabet position of an ASCII letter, ignoring case.
// The second result is false for anything that is not an ASCII letter.
func Pos(r rune) (int, bool) {
	switch {
	case 'a' <= r && r <= 'z':
		return int(r - 'a'), true
	case 'A' <= r && r <= 'Z':
		return int(r - 'A'), true
	}
	return 0, false
}

// Rune rotates r forward by n positions, keeping its case.
// Runes that are not ASCII letters are returned unchanged.
func Rune(r rune, n int) rune {
	n = Norm(n)
	switch {
	case 'a' <= r && r <= 'z':
		return 'a' + (r-'a'+rune(n))%Letters
	case 'A' <= r && r <= 'Z':
		return 'A' + (r-'A'+rune(n))%Letters
	}
	return r
}

// Dist returns the forward circular distance from letter a to letter b,
// so that Rune(a, Dist(a, b)) equals b up to case.
func Dist(a, b rune) int {
	pa, ok := Pos(a)
	if !ok {
		panic("rot: input must be a letter")
	}
	pb, ok := Pos(b)
	if !ok {
		panic("rot: input must be a letter")
	}
	return Norm(pb - pa)
}
