// Package solve deciphers a stream of rotated lines against a dictionary index.
package solve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"rotx/internal/ctxlog"
	"rotx/internal/dict"
	"rotx/internal/rotate"
	"rotx/internal/vote"

	"golang.org/x/sync/errgroup"
)

// Line is one solved input line.
type Line struct {
	// Num is the 1-based line number.
	Num int
	// Text is the deciphered line, terminator included.
	Text string
	// Rotation is the rotation the line was ciphered with.
	Rotation int
	// Votes is the number of votes for Rotation.
	Votes    int
	Words    int
	Matched  int
	Fallback bool
}

// Stats summarizes a run.
type Stats struct {
	Lines     int
	Fallbacks int
	Words     int
	Matched   int
}

func (s *Stats) add(l Line) {
	s.Lines++
	s.Words += l.Words
	s.Matched += l.Matched
	if l.Fallback {
		s.Fallbacks++
	}
}

type Solver struct {
	idx       *dict.Index
	workers   int
	batchSize int
}

func New(idx *dict.Index, config Config) *Solver {
	if idx == nil {
		panic("solve: index is required")
	}
	config = config.WithDefaults()

	return &Solver{
		idx:       idx,
		workers:   config.Workers,
		batchSize: config.BatchSize,
	}
}

// Line solves a single raw line.
func (s *Solver) Line(num int, raw string) Line {
	res := vote.Tally(raw, s.idx)
	n := res.Rotation()

	return Line{
		Num:      num,
		Text:     rotate.Decode(raw, -n),
		Rotation: n,
		Votes:    res.Votes.Votes(n),
		Words:    res.Words,
		Matched:  res.Matched,
		Fallback: res.Fallback(),
	}
}

// Run solves every line of src and hands the results to sink in input order.
// Line terminators are kept as they are, including a missing final one.
func (s *Solver) Run(ctx context.Context, src io.Reader, sink Sink) (Stats, error) {
	logger := ctxlog.Get(ctx)

	var stats Stats

	br := bufio.NewReader(src)
	batch := make([]string, 0, s.batchSize)

	for eof := false; !eof; {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		batch = batch[:0]
		for len(batch) < s.batchSize {
			raw, err := br.ReadString('\n')
			if raw != "" {
				batch = append(batch, raw)
			}
			if errors.Is(err, io.EOF) {
				eof = true
				break
			}
			if err != nil {
				return stats, fmt.Errorf("read line %d: %w", stats.Lines+len(batch)+1, err)
			}
		}

		lines, err := s.batch(ctx, stats.Lines, batch)
		if err != nil {
			return stats, err
		}

		for _, l := range lines {
			if err := sink.Write(l); err != nil {
				return stats, fmt.Errorf("write line %d: %w", l.Num, err)
			}
			stats.add(l)

			logger.Debug("line solved", "line", l.Num, "rotation", l.Rotation, "votes", l.Votes, "matched", l.Matched, "fallback", l.Fallback)
		}
	}

	return stats, nil
}

func (s *Solver) batch(ctx context.Context, offset int, raw []string) ([]Line, error) {
	lines := make([]Line, len(raw))

	if s.workers <= 1 {
		for i, r := range raw {
			lines[i] = s.Line(offset+i+1, r)
		}
		return lines, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, r := range raw {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines[i] = s.Line(offset+i+1, r)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}
