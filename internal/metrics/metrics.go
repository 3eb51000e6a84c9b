// Package metrics defines the Prometheus collectors of a solver run and
// writes them in the textfile exposition format.
package metrics

import (
	"fmt"
	"rotx/internal/solve"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	// File receives the metrics after a run, e.g. for the node_exporter
	// textfile collector. Empty disables it.
	File string `yaml:"file"`
}

// Metrics holds all collectors of a run.
type Metrics struct {
	registry *prometheus.Registry

	LinesTotal         prometheus.Counter
	FallbackLinesTotal prometheus.Counter
	MatchedWordsTotal  prometheus.Counter
	LinesByRotation    *prometheus.CounterVec
	LineVotes          prometheus.Histogram
	DictionaryEntries  prometheus.Gauge
	RunDuration        prometheus.Gauge
}

// New creates the collectors and registers them with a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LinesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rotx_lines_total",
				Help: "Total number of lines solved.",
			},
		),
		FallbackLinesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rotx_fallback_lines_total",
				Help: "Lines without a single dictionary match, left unrotated.",
			},
		),
		MatchedWordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rotx_matched_words_total",
				Help: "Words that matched at least one dictionary entry.",
			},
		),
		LinesByRotation: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rotx_lines_by_rotation_total",
				Help: "Solved lines by chosen rotation.",
			},
			[]string{"rotation"},
		),
		LineVotes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rotx_line_votes",
				Help:    "Votes for the chosen rotation per line.",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
		),
		DictionaryEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "rotx_dictionary_entries",
				Help: "Number of indexed dictionary words.",
			},
		),
		RunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "rotx_run_duration_seconds",
				Help: "Wall time of the last run in seconds.",
			},
		),
	}

	m.registry.MustRegister(
		m.LinesTotal,
		m.FallbackLinesTotal,
		m.MatchedWordsTotal,
		m.LinesByRotation,
		m.LineVotes,
		m.DictionaryEntries,
		m.RunDuration,
	)

	return m
}

// Observe records a solved line. It matches solve.SinkFunc.
func (m *Metrics) Observe(l solve.Line) error {
	m.LinesTotal.Inc()
	m.MatchedWordsTotal.Add(float64(l.Matched))
	if l.Fallback {
		m.FallbackLinesTotal.Inc()
	}
	m.LinesByRotation.WithLabelValues(strconv.Itoa(l.Rotation)).Inc()
	m.LineVotes.Observe(float64(l.Votes))
	return nil
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile atomically writes all metrics to file.
func (m *Metrics) WriteFile(file string) error {
	if err := prometheus.WriteToTextfile(file, m.registry); err != nil {
		return fmt.Errorf("metrics: write %q: %w", file, err)
	}
	return nil
}
