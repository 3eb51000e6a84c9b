package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"rotx/internal/ctxlog"
	"rotx/internal/db"
	"rotx/internal/rec"
	"syscall"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Log ctxlog.Config `yaml:"log"`
	DB  db.Config     `yaml:"db"`
}

func LoadConfig(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	// Not strict: the file is shared with rotx.
	dec := yaml.NewDecoder(file)

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	if config.DB.File == "" {
		return Config{}, fmt.Errorf("db.file is required")
	}
	return config, nil
}

func run(ctx context.Context, config string) (err error) {
	defer rec.Error(&err)

	c, err := LoadConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx = ctxlog.Setup(ctx, "solves", ctxlog.Config{Level: c.Log.Level})
	logger := ctxlog.Get(ctx)

	logger.Info("opening db")
	db.Open(c.DB)
	defer ctxlog.Close(ctx, "db", db.Closer())

	for input, r := range db.Inputs() {
		lines, fallbacks := 0, 0
		for line, s := range db.Solves(input) {
			lines++
			if s.Fallback {
				fallbacks++
			}
			logger.Debug("line", "input", input, "line", line, "rotation", s.Rotation, "votes", s.Votes, "fallback", s.Fallback)
		}

		logger.Info("input", "input", input, "started", r.Started, "dictionary", r.Dictionary, "lines", lines, "fallback", fallbacks)
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
		ctxlog.Get(ctx).Error("stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}
