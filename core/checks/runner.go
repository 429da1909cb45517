// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"codeberg.org/transqa/transqa/core/audit"
)

// DefaultWorkers is used when Runner.Workers is not positive.
const DefaultWorkers = 4

// Result is the outcome of all checks for one unit.
type Result struct {
	UnitID   string   `json:"unit"     yaml:"unit"`
	Language string   `json:"language" yaml:"language"`
	Source   string   `json:"source"   yaml:"source"`
	Target   string   `json:"target"   yaml:"target"`
	Failed   []string `json:"failed"   yaml:"failed"`
}

// OK reports whether no check failed.
func (r Result) OK() bool {
	return len(r.Failed) == 0
}

// Pass is the outcome of one validation pass.
type Pass struct {
	ID       uuid.UUID `json:"id"       yaml:"id"`
	Started  time.Time `json:"started"  yaml:"started"`
	Finished time.Time `json:"finished" yaml:"finished"`
	Results  []Result  `json:"results"  yaml:"results"`
}

// FailedUnits returns how many units failed at least one check.
func (p *Pass) FailedUnits() int {
	n := 0

	for _, r := range p.Results {
		if !r.OK() {
			n++
		}
	}

	return n
}

// Failures counts failed units per check ID.
func (p *Pass) Failures() map[string]int {
	out := make(map[string]int)

	for _, r := range p.Results {
		for _, id := range r.Failed {
			out[id]++
		}
	}

	return out
}

// Runner evaluates a set of checks over many units.
type Runner struct {
	Checks []Check

	// NewStore creates the scratch store for a pass.
	// A nil NewStore uses NewPassStore.
	NewStore func() Store

	Workers int
}

// Run performs one validation pass over units. Every pass gets a fresh
// store, so nothing cached by an earlier pass is reused.
//
// Results are returned in the order of units. Run stops early and returns
// the context error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, units []Unit) (*Pass, error) {
	store := r.store()
	pass := &Pass{
		ID:      uuid.New(),
		Results: make([]Result, len(units)),
	}

	span := audit.Span{
		Kind:  audit.KindPass,
		ID:    pass.ID.String(),
		Items: len(units),
	}
	ctx = span.Begin(ctx)
	pass.Started = span.Started()

	logger := audit.Sys("checks")
	logger.Info().
		Str("pass", span.ID).
		Int("units", len(units)).
		Int("checks", len(r.Checks)).
		Msg("Starting validation pass")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i, unit := range units {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			pass.Results[i] = r.evaluate(unit, store)

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	span.End()
	pass.Finished = time.Now()
	span.Failed = pass.FailedUnits()
	span.Error = err
	span.Log()

	if err != nil {
		return nil, err
	}

	return pass, nil
}

func (r *Runner) evaluate(unit Unit, store Store) Result {
	res := Result{
		UnitID:   unit.ID(),
		Language: unit.LanguageCode(),
	}

	if src := unit.Sources(); len(src) > 0 {
		res.Source = src[0]
	}

	if tgt := unit.Targets(); len(tgt) > 0 {
		res.Target = tgt[0]
	}

	for _, check := range r.Checks {
		if CheckUnit(check, unit, store) {
			res.Failed = append(res.Failed, check.ID())
		}
	}

	return res
}

func (r *Runner) store() Store {
	if r.NewStore != nil {
		if s := r.NewStore(); s != nil {
			return s
		}
	}

	return NewPassStore()
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}

	return DefaultWorkers
}
