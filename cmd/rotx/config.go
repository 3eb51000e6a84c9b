package main

import (
	"context"
	"fmt"
	"os"
	"rotx/internal/ctxlog"
	"rotx/internal/db"
	"rotx/internal/dict"
	"rotx/internal/metrics"
	"rotx/internal/solve"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Log        ctxlog.Config  `yaml:"log"`
	Dictionary dict.Config    `yaml:"dictionary"`
	Solve      solve.Config   `yaml:"solve"`
	DB         db.Config      `yaml:"db"`
	Metrics    metrics.Config `yaml:"metrics"`
}

func LoadConfig(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	config.Dictionary = config.Dictionary.WithDefaults()
	config.Solve = config.Solve.WithDefaults()

	if err := config.Dictionary.Validate(); err != nil {
		return Config{}, err
	}
	if config.Dictionary.File == "" {
		return Config{}, fmt.Errorf("dictionary.file is required")
	}
	if config.Solve.Input == "" || config.Solve.Output == "" {
		return Config{}, fmt.Errorf("solve.input and solve.output are required")
	}

	return config, nil
}
