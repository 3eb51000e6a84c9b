package rot

import (
	"fmt"
	"testing"
)

func TestNorm(t *testing.T) {
	for _, tc := range []struct {
		n, want int
	}{
		{0, 0},
		{25, 25},
		{26, 0},
		{27, 1},
		{-1, 25},
		{-26, 0},
		{-27, 25},
		{-53, 25},
	} {
		if have := Norm(tc.n); have != tc.want {
			t.Errorf("Norm(%d) = %d, want %d", tc.n, have, tc.want)
		}
	}
}

func TestPos(t *testing.T) {
	for _, tc := range []struct {
		r   rune
		pos int
		ok  bool
	}{
		{'a', 0, true},
		{'A', 0, true},
		{'z', 25, true},
		{'Z', 25, true},
		{'m', 12, true},
		{'0', 0, false},
		{' ', 0, false},
		{'é', 0, false},
		{'[', 0, false},
	} {
		pos, ok := Pos(tc.r)
		if pos != tc.pos || ok != tc.ok {
			t.Errorf("Pos(%q) = %d, %t, want %d, %t", tc.r, pos, ok, tc.pos, tc.ok)
		}
	}
}

func TestRune(t *testing.T) {
	for _, tc := range []struct {
		r    rune
		n    int
		want rune
	}{
		{'a', 1, 'b'},
		{'z', 1, 'a'},
		{'Z', 1, 'A'},
		{'c', -2, 'a'},
		{'A', -1, 'Z'},
		{'q', 26, 'q'},
		{'Q', 13, 'D'},
		{'!', 5, '!'},
		{'5', 5, '5'},
	} {
		t.Run(fmt.Sprintf("%c%+d", tc.r, tc.n), func(t *testing.T) {
			if have, want := Rune(tc.r, tc.n), tc.want; have != want {
				t.Fatalf("have %q, want %q", have, want)
			}
		})
	}
}

func TestDist(t *testing.T) {
	for a := 'a'; a <= 'z'; a++ {
		for n := range Letters {
			b := Rune(a, n)
			if have := Dist(a, b); have != n {
				t.Fatalf("Dist(%q, %q) = %d, want %d", a, b, have, n)
			}
			if have := Dist(a-'a'+'A', b); have != n {
				t.Fatalf("Dist(%q, %q) = %d, want %d", a-'a'+'A', b, have, n)
			}
		}
	}
}

func TestDistPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Dist did not panic on a non-letter")
		}
	}()
	Dist('a', '-')
}
