package db

import "fmt"

const journalBatch = 512

// Journal buffers solves of one input and writes them in batches,
// since every bbolt transaction syncs to disk.
type Journal struct {
	input   string
	first   int
	pending []Solve
}

// NewJournal resets the journal of input and returns a writer for it.
func NewJournal(input string, run Run) (*Journal, error) {
	if err := Reset(input, run); err != nil {
		return nil, err
	}

	return &Journal{
		input:   input,
		first:   1,
		pending: make([]Solve, 0, journalBatch),
	}, nil
}

// Put journals line, which must follow the previously put line.
func (j *Journal) Put(line int, s Solve) error {
	if want := j.first + len(j.pending); line != want {
		return fmt.Errorf("db: journal %q: got line %d, want %d", j.input, line, want)
	}

	j.pending = append(j.pending, s)
	if len(j.pending) >= journalBatch {
		return j.Flush()
	}
	return nil
}

func (j *Journal) Flush() error {
	if len(j.pending) == 0 {
		return nil
	}

	if err := Put(j.input, j.first, j.pending); err != nil {
		return err
	}
	j.first += len(j.pending)
	j.pending = j.pending[:0]
	return nil
}

// Close flushes pending solves.
func (j *Journal) Close() error {
	return j.Flush()
}
