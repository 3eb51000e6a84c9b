// Package vote guesses the rotation of a ciphered sentence by matching its
// words against a dictionary index.
//
// Every dictionary word with the same gap sequence as a ciphered word implies
// one rotation: the distance between their first letters. Each such match
// casts one vote, and the rotation with the most votes across the sentence
// wins.
package vote

import (
	"rotx/internal/dict"
	"rotx/internal/distance"
	"rotx/internal/rot"
	"strings"
)

// Histogram counts votes per rotation amount.
type Histogram [rot.Letters]int

// Add casts one vote for rotation n.
func (h *Histogram) Add(n int) {
	h[rot.Norm(n)]++
}

// Votes returns the votes cast for rotation n.
func (h Histogram) Votes(n int) int {
	return h[rot.Norm(n)]
}

// Total returns the number of votes cast.
func (h Histogram) Total() int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

// Best returns the rotation with the most votes. Ties go to the lowest
// rotation, so an empty histogram yields 0.
func (h Histogram) Best() int {
	best := 0
	for i, v := range h {
		if v > h[best] {
			best = i
		}
	}
	return best
}

// Result is the outcome of voting on one sentence.
type Result struct {
	Votes Histogram
	// Words is the number of cleaned words within the index length bounds.
	Words int
	// Matched is the number of those words with at least one match.
	Matched int
}

// Rotation returns the rotation that was applied to the plaintext.
func (r Result) Rotation() int {
	return r.Votes.Best()
}

// Fallback reports whether no word matched, leaving rotation 0 by default.
func (r Result) Fallback() bool {
	return r.Votes.Total() == 0
}

// Tally votes on the rotation of sentence.
func Tally(sentence string, idx *dict.Index) Result {
	var res Result

	for _, token := range strings.Fields(sentence) {
		word := distance.Clean(token)
		if len(word) < idx.MinLen() || len(word) > idx.MaxLen() {
			continue
		}
		res.Words++

		matches := idx.Match(distance.Of(word))
		if len(matches) == 0 {
			continue
		}
		res.Matched++

		for _, e := range matches {
			res.Votes.Add(rot.Dist(rune(e.Word[0]), rune(word[0])))
		}
	}

	return res
}

// Sentence returns the vote histogram of sentence.
func Sentence(sentence string, idx *dict.Index) Histogram {
	return Tally(sentence, idx).Votes
}
