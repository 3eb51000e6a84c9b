// Package dict indexes a word list by word length and gap sequence.
package dict

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"rotx/internal/ctxlog"
	"rotx/internal/distance"
	"rotx/internal/rec"
)

// ErrBounds is returned for word length bounds outside 1 <= minLen <= maxLen.
var ErrBounds = errors.New("dict: invalid word length bounds")

type Config struct {
	File   string `yaml:"file"`
	MinLen int    `yaml:"minLen"`
	MaxLen int    `yaml:"maxLen"`
}

const (
	DefaultMinLen = 2
	DefaultMaxLen = 6
)

// WithDefaults fills unset length bounds.
func (c Config) WithDefaults() Config {
	if c.MinLen == 0 {
		c.MinLen = DefaultMinLen
	}
	if c.MaxLen == 0 {
		c.MaxLen = DefaultMaxLen
	}
	return c
}

func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

func (c Config) Validate() error {
	if c.MinLen < 1 || c.MaxLen < c.MinLen {
		return fmt.Errorf("%w: minLen %d, maxLen %d", ErrBounds, c.MinLen, c.MaxLen)
	}
	return nil
}

// Entry is an indexed word together with its gap sequence.
type Entry struct {
	Word string
	Dist distance.Seq
}

type bucket struct {
	entries []Entry
	shapes  map[string][]Entry
}

// Index holds the words of a word list grouped by length.
// It is never modified after Build returns and is safe for concurrent use.
type Index struct {
	minLen  int
	maxLen  int
	buckets []bucket
	size    int
}

func newIndex(minLen, maxLen int) *Index {
	buckets := make([]bucket, maxLen-minLen+1)
	for i := range buckets {
		buckets[i].shapes = map[string][]Entry{}
	}

	return &Index{
		minLen:  minLen,
		maxLen:  maxLen,
		buckets: buckets,
	}
}

func (idx *Index) bucket(length int) *bucket {
	if length < idx.minLen || length > idx.maxLen {
		return nil
	}
	return &idx.buckets[length-idx.minLen]
}

// add indexes word unless it is out of bounds or not a word.
// Repeated words are indexed again and vote again.
func (idx *Index) add(word string) bool {
	b := idx.bucket(len(word))
	if b == nil || !distance.IsWord(word) {
		return false
	}

	e := Entry{Word: word, Dist: distance.Of(word)}
	b.entries = append(b.entries, e)
	b.shapes[e.Dist.Key()] = append(b.shapes[e.Dist.Key()], e)
	idx.size++
	return true
}

// Build reads whitespace separated words from r and indexes those whose
// length lies within the configured bounds. Other tokens are dropped.
func Build(r io.Reader, config Config) (*Index, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	idx := newIndex(config.MinLen, config.MaxLen)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		idx.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dict: read words: %w", err)
	}

	return idx, nil
}

// Load builds an index from the word list in config.File.
func Load(ctx context.Context, config Config) (idx *Index, err error) {
	defer rec.Wrap(&err, "load dictionary %q: %w", config.File)

	file, err := os.Open(config.File)
	if err != nil {
		return nil, err
	}
	defer ctxlog.Close(ctx, "dictionary file", file)

	return Build(file, config)
}

// Lookup returns the entries of the given length in load order.
// The returned slice must not be modified.
func (idx *Index) Lookup(length int) []Entry {
	b := idx.bucket(length)
	if b == nil {
		return nil
	}
	return b.entries[:len(b.entries):len(b.entries)]
}

// Match returns the entries, in load order, whose gap sequence equals seq.
// The returned slice must not be modified.
func (idx *Index) Match(seq distance.Seq) []Entry {
	b := idx.bucket(len(seq) + 1)
	if b == nil {
		return nil
	}
	m := b.shapes[seq.Key()]
	return m[:len(m):len(m)]
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return idx.size
}

func (idx *Index) MinLen() int {
	return idx.minLen
}

func (idx *Index) MaxLen() int {
	return idx.maxLen
}
