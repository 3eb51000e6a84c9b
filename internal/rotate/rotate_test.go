package rotate

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

const printable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,;:!?'\"-_()[]\t\r\n"

func randStr(l int) string {
	s := &strings.Builder{}
	s.Grow(l)
	for range l {
		s.WriteByte(printable[rand.IntN(len(printable))])
	}
	return s.String()
}

func TestRand(t *testing.T) {
	for range 100 {
		str := randStr(40)
		n := rand.IntN(200) - 100

		t.Run(fmt.Sprintf("%q/%d", str, n), func(t *testing.T) {
			enc := Encode(str, n)
			if have, want := Decode(enc, n), str; have != want {
				t.Fatalf("Decoded %q != %q", have, want)
			}
			if have, want := len(enc), len(str); have != want {
				t.Fatalf("Encoded length %d != %d", have, want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		s    string
		n    int
		want string
	}{
		{"ecv", -2, "cat"},
		{"ecv", 24, "cat"},
		{"Hello, World!", 13, "Uryyb, Jbeyq!"},
		{"Uryyb, Jbeyq!", 13, "Hello, World!"},
		{"xyz XYZ", 3, "abc ABC"},
		{"abc\r\n", 1, "bcd\r\n"},
		{"Same", 26, "Same"},
		{"Same", 0, "Same"},
		{"Same", -52, "Same"},
		{"", 7, ""},
		{"naïve café", 1, "obïwf dbgé"},
		{"Dbg\xe9 12\n", -1, "Caf\xe9 12\n"},
		{"\xff\xfeab\x80", 2, "\xff\xfecd\x80"},
	} {
		t.Run(fmt.Sprintf("%q/%d", tc.s, tc.n), func(t *testing.T) {
			if have, want := Decode(tc.s, tc.n), tc.want; have != want {
				t.Fatalf("have %q, want %q", have, want)
			}
		})
	}
}

func TestNoLetters(t *testing.T) {
	const s = "1234 -- !? ... \t 42\xe9\n"
	for n := -30; n <= 30; n++ {
		if have := Decode(s, n); have != s {
			t.Fatalf("Decode(%q, %d) = %q, want unchanged", s, n, have)
		}
	}
}

func TestPreserves(t *testing.T) {
	for range 50 {
		str := randStr(60)
		n := rand.IntN(26)
		dec := Decode(str, n)

		for i := range len(str) {
			a, b := str[i], dec[i]
			switch {
			case 'a' <= a && a <= 'z':
				if b < 'a' || b > 'z' {
					t.Fatalf("%q -> %q: lowercase %q became %q", str, dec, a, b)
				}
			case 'A' <= a && a <= 'Z':
				if b < 'A' || b > 'Z' {
					t.Fatalf("%q -> %q: uppercase %q became %q", str, dec, a, b)
				}
			default:
				if a != b {
					t.Fatalf("%q -> %q: %q at %d changed to %q", str, dec, a, i, b)
				}
			}
		}
	}
}
