// Package db keeps a journal of solved lines per input file in a BoltDB file.
package db

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketSolves = []byte("solves")
)

type Config struct {
	File string `yaml:"file"`
}

var db *bbolt.DB

func Open(config Config) {
	if db != nil {
		panic("db: already opened")
	}
	if config.File == "" {
		panic("db: file is required")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("db: create db dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("db: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSolves)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketSolves, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		db = nil
		panic(fmt.Errorf("db: initialize buckets: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("db: not opened")
	}

	err := db.Close()
	db = nil
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

// Solve is the journaled outcome of one line.
type Solve struct {
	Rotation int  `json:"rotation"`
	Votes    int  `json:"votes"`
	Words    int  `json:"words"`
	Matched  int  `json:"matched"`
	Fallback bool `json:"fallback"`
}

// Run describes the latest run over an input.
type Run struct {
	Started    time.Time `json:"started"`
	Dictionary string    `json:"dictionary"`
}

var keyRun = []byte("run")

func lineKey(line int) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(line))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("db: must: %w", err))
	}
	return v
}

func update(fn func(*bbolt.Bucket) error) error {
	if db == nil {
		panic("db: not opened")
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSolves)
		if b == nil {
			return fmt.Errorf("db: solves bucket not found")
		}
		return fn(b)
	})
}

// Reset drops everything journaled for input and records the start of a new run.
func Reset(input string, run Run) error {
	return update(func(b *bbolt.Bucket) error {
		if b.Bucket([]byte(input)) != nil {
			if err := b.DeleteBucket([]byte(input)); err != nil {
				return fmt.Errorf("db: delete journal for %q: %w", input, err)
			}
		}

		ib, err := b.CreateBucket([]byte(input))
		if err != nil {
			return fmt.Errorf("db: create journal for %q: %w", input, err)
		}
		return ib.Put(keyRun, must(json.Marshal(run)))
	})
}

// Put journals solves for consecutive lines of input starting at first.
func Put(input string, first int, solves []Solve) error {
	return update(func(b *bbolt.Bucket) error {
		ib := b.Bucket([]byte(input))
		if ib == nil {
			return fmt.Errorf("db: no journal for %q", input)
		}
		lines, err := ib.CreateBucketIfNotExists([]byte("lines"))
		if err != nil {
			return fmt.Errorf("db: create lines bucket for %q: %w", input, err)
		}

		for i, s := range solves {
			if err := lines.Put(lineKey(first+i), must(json.Marshal(s))); err != nil {
				return fmt.Errorf("db: put line %d of %q: %w", first+i, input, err)
			}
		}
		return nil
	})
}

var errStop = fmt.Errorf("stop iteration")

func view(fn func(*bbolt.Bucket) error) error {
	if db == nil {
		panic("db: not opened")
	}

	return db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSolves)
		if b == nil {
			return fmt.Errorf("db: solves bucket not found")
		}
		return fn(b)
	})
}

// Inputs lists every journaled input with its latest run.
func Inputs() iter.Seq2[string, Run] {
	return func(yield func(string, Run) bool) {
		err := view(func(b *bbolt.Bucket) error {
			return b.ForEachBucket(func(k []byte) error {
				var run Run
				if data := b.Bucket(k).Get(keyRun); data != nil {
					if err := json.Unmarshal(data, &run); err != nil {
						return fmt.Errorf("db: unmarshal run for %q: %w", k, err)
					}
				}

				if !yield(string(k), run) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: list inputs: %w", err))
		}
	}
}

// Solves iterates the journaled lines of input in line order.
func Solves(input string) iter.Seq2[int, Solve] {
	return func(yield func(int, Solve) bool) {
		err := view(func(b *bbolt.Bucket) error {
			ib := b.Bucket([]byte(input))
			if ib == nil {
				return nil
			}
			lines := ib.Bucket([]byte("lines"))
			if lines == nil {
				return nil
			}

			return lines.ForEach(func(k, v []byte) error {
				var s Solve
				err := json.Unmarshal(v, &s)
				if err != nil {
					return fmt.Errorf("db: unmarshal line for %q: %w", input, err)
				}

				if !yield(int(binary.BigEndian.Uint64(k)), s) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: get solves for %q: %w", input, err))
		}
	}
}
