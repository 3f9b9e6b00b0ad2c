//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package etl defines the extract/transform/load contract every table
// build implements, and a runner that executes builds with per-build
// failure containment.
package etl

import (
	"fmt"

	"github.com/martgen/martgen/internal/logging"
)

// Builder is one table build: read its input, derive the output table,
// persist it. Each builder owns its own data; no state is shared across
// builders.
type Builder interface {
	// Name identifies the build in logs and status reports.
	Name() string

	// Extract loads the builder's input dataset.
	Extract() error

	// Transform derives the output dataset from the extracted input.
	Transform() error

	// Load persists the output dataset.
	Load() error
}

// Status is the outcome of one build.
type Status struct {
	Name string
	Err  error
}

// Failed reports whether the build failed.
func (s Status) Failed() bool {
	return s.Err != nil
}

// Run executes the builders in order. A failure in any phase of a build
// stops that build only; later builders still run. The returned statuses
// are in builder order.
func Run(builders ...Builder) []Status {
	statuses := make([]Status, 0, len(builders))
	for _, b := range builders {
		statuses = append(statuses, Status{Name: b.Name(), Err: runOne(b)})
	}
	return statuses
}

// AllOK reports whether every status succeeded.
func AllOK(statuses []Status) bool {
	for _, s := range statuses {
		if s.Failed() {
			return false
		}
	}
	return true
}

func runOne(b Builder) error {
	phases := []struct {
		name string
		fn   func() error
	}{
		{"extract", b.Extract},
		{"transform", b.Transform},
		{"load", b.Load},
	}
	for _, phase := range phases {
		if err := phase.fn(); err != nil {
			logging.Error().
				Str("builder", b.Name()).
				Str("phase", phase.name).
				Err(err).
				Msg("Build failed")
			return fmt.Errorf("%s %s: %w", b.Name(), phase.name, err)
		}
		logging.Debug().
			Str("builder", b.Name()).
			Str("phase", phase.name).
			Msg("Phase complete")
	}
	logging.Info().
		Str("builder", b.Name()).
		Msg("Build complete")
	return nil
}
