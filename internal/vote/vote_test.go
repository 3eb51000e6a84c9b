package vote

import (
	"rotx/internal/dict"
	"rotx/internal/rotate"
	"strings"
	"testing"
)

const words = `the and for are but not you all any can had her was one our out day get
has him his how man new now old see two way who boy did its let put say she too use
cat dog sat on mat quick brown fox jumps over lazy little house is it in of to be`

func index(t *testing.T, s string) *dict.Index {
	t.Helper()
	idx, err := dict.Build(strings.NewReader(s), dict.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestBest(t *testing.T) {
	var h Histogram
	if have, want := h.Best(), 0; have != want {
		t.Fatalf("empty Best() = %d, want %d", have, want)
	}

	h.Add(7)
	h.Add(3)
	if have, want := h.Best(), 3; have != want {
		t.Fatalf("tied Best() = %d, want %d", have, want)
	}

	h.Add(-19)
	if have, want := h.Best(), 7; have != want {
		t.Fatalf("Best() = %d, want %d", have, want)
	}
	if have, want := h.Votes(7), 2; have != want {
		t.Fatalf("Votes(7) = %d, want %d", have, want)
	}
	if have, want := h.Total(), 3; have != want {
		t.Fatalf("Total() = %d, want %d", have, want)
	}
}

func TestSingleWord(t *testing.T) {
	idx := index(t, "cat")

	h := Sentence("ecv", idx)
	if have, want := h.Best(), 2; have != want {
		t.Fatalf("Best() = %d, want %d (%v)", have, want, h)
	}
	if have, want := rotate.Decode("ecv", -h.Best()), "cat"; have != want {
		t.Fatalf("decoded %q, want %q", have, want)
	}
}

func TestAllRotations(t *testing.T) {
	idx := index(t, words)
	const plain = "The quick brown fox jumps over the lazy dog."

	for n := range 26 {
		cipher := rotate.Encode(plain, -n)
		res := Tally(cipher, idx)
		if have, want := res.Rotation(), n; have != want {
			t.Fatalf("%q: rotation %d, want %d (%v)", cipher, have, want, res.Votes)
		}
		if have, want := rotate.Decode(cipher, -res.Rotation()), plain; have != want {
			t.Fatalf("decoded %q, want %q", have, want)
		}
	}
}

func TestNoMatch(t *testing.T) {
	idx := index(t, words)

	for _, s := range []string{"", "   ", "... --- !!!", "qzxv jjkq", "1234 5678"} {
		res := Tally(s, idx)
		if !res.Fallback() {
			t.Errorf("%q: unexpected votes %v", s, res.Votes)
		}
		if have, want := res.Rotation(), 0; have != want {
			t.Errorf("%q: rotation %d, want %d", s, have, want)
		}
	}
}

func TestPunctuation(t *testing.T) {
	idx := index(t, "cat sat on the mat")
	cipher := rotate.Encode(`"The cat, sat... on the mat!" -- (42)`, -5)

	res := Tally(cipher, idx)
	if have, want := res.Rotation(), 5; have != want {
		t.Fatalf("rotation %d, want %d (%v)", have, want, res.Votes)
	}
	if have, want := res.Words, 6; have != want {
		t.Fatalf("Words = %d, want %d", have, want)
	}
	if have, want := res.Matched, 6; have != want {
		t.Fatalf("Matched = %d, want %d", have, want)
	}
}

func TestSplitVotes(t *testing.T) {
	// "dbu" is "cat" rotated by one, so both match every rotation of "cat".
	idx := index(t, "cat dbu dog")

	h := Sentence("ecv", idx)
	if have, want := h.Votes(2), 1; have != want {
		t.Fatalf("Votes(2) = %d, want %d", have, want)
	}
	if have, want := h.Votes(1), 1; have != want {
		t.Fatalf("Votes(1) = %d, want %d", have, want)
	}
	if have, want := h.Best(), 1; have != want {
		t.Fatalf("tied Best() = %d, want %d", have, want)
	}

	h = Sentence("ecv fqi", idx)
	if have, want := h.Best(), 2; have != want {
		t.Fatalf("Best() = %d, want %d (%v)", have, want, h)
	}
	if have, want := h.Total(), 3; have != want {
		t.Fatalf("Total() = %d, want %d", have, want)
	}
}

func TestRepeatedWordsVote(t *testing.T) {
	// Alone, "cat" and "dbu" tie and the lower rotation would win.
	idx := index(t, "cat cat dbu")

	h := Sentence("ecv", idx)
	if have, want := h.Votes(2), 2; have != want {
		t.Fatalf("Votes(2) = %d, want %d", have, want)
	}
	if have, want := h.Votes(1), 1; have != want {
		t.Fatalf("Votes(1) = %d, want %d", have, want)
	}
	if have, want := rotate.Decode("ecv", -h.Best()), "cat"; have != want {
		t.Fatalf("decoded %q, want %q", have, want)
	}
}

func TestLengthBounds(t *testing.T) {
	idx, err := dict.Build(strings.NewReader("cat house"), dict.Config{MinLen: 3, MaxLen: 3})
	if err != nil {
		t.Fatal(err)
	}

	res := Tally("ecv jqwug", idx)
	if have, want := res.Words, 1; have != want {
		t.Fatalf("Words = %d, want %d", have, want)
	}
	if have, want := res.Rotation(), 2; have != want {
		t.Fatalf("rotation %d, want %d", have, want)
	}
}
