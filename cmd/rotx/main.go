package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"rotx/internal/ctxlog"
	"rotx/internal/db"
	"rotx/internal/dict"
	"rotx/internal/metrics"
	"rotx/internal/rec"
	"rotx/internal/solve"
	"syscall"
	"time"
)

func run(ctx context.Context, config string) (err error) {
	defer rec.Error(&err)

	c, err := LoadConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx = ctxlog.Setup(ctx, "rotx", c.Log)
	logger := ctxlog.Get(ctx)

	start := time.Now()

	logger.Info("loading dictionary", "file", c.Dictionary.File, "minLen", c.Dictionary.MinLen, "maxLen", c.Dictionary.MaxLen)
	idx, err := dict.Load(ctx, c.Dictionary)
	if err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	logger.Info("dictionary loaded", "entries", idx.Len())

	m := metrics.New()
	m.DictionaryEntries.Set(float64(idx.Len()))

	in, err := os.Open(c.Solve.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer ctxlog.Close(ctx, "input", in)

	out, err := os.Create(c.Solve.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer ctxlog.CloseInto(ctx, "output", out, &err)
	w := bufio.NewWriter(out)

	sinks := []solve.Sink{solve.Text(w), solve.SinkFunc(m.Observe)}

	if c.DB.File != "" {
		logger.Info("opening db", "file", c.DB.File)
		db.Open(c.DB)
		defer ctxlog.CloseInto(ctx, "db", db.Closer(), &err)

		j, jerr := db.NewJournal(c.Solve.Input, db.Run{Started: start, Dictionary: c.Dictionary.File})
		if jerr != nil {
			return fmt.Errorf("journal: %w", jerr)
		}
		// Flushes the last batch of solves.
		defer ctxlog.CloseInto(ctx, "journal", j, &err)

		sinks = append(sinks, solve.SinkFunc(func(l solve.Line) error {
			return j.Put(l.Num, db.Solve{
				Rotation: l.Rotation,
				Votes:    l.Votes,
				Words:    l.Words,
				Matched:  l.Matched,
				Fallback: l.Fallback,
			})
		}))
	}

	logger.Info("solving", "input", c.Solve.Input, "output", c.Solve.Output, "workers", c.Solve.Workers)
	stats, err := solve.New(idx, c.Solve).Run(ctx, in, solve.Tee(sinks...))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	dur := time.Since(start)
	m.RunDuration.Set(dur.Seconds())
	logger.Info("solved", "lines", stats.Lines, "fallback", stats.Fallbacks, "words", stats.Words, "matched", stats.Matched, "duration", dur.String())

	if c.Metrics.File != "" {
		if err := m.WriteFile(c.Metrics.File); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	config := "config.yaml"
	if len(os.Args) > 1 {
		config = os.Args[1]
	}

	err := run(ctx, config)
	if err != nil {
		ctxlog.Get(ctx).Error("run failed", "error", err)
		os.Exit(1)
	}
}
