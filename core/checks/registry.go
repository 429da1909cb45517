// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCheck is returned when two checks share an ID.
	ErrDuplicateCheck = errors.New("duplicate check")

	// ErrUnknownCheck is returned when a requested check is not registered.
	ErrUnknownCheck = errors.New("unknown check")
)

// Registry is an ordered collection of checks keyed by ID.
// It is not safe for concurrent modification; populate it at start-up.
type Registry struct {
	byID  map[string]Check
	order []Check
}

// NewRegistry returns a registry holding checks, in order.
func NewRegistry(checks ...Check) (*Registry, error) {
	r := &Registry{byID: make(map[string]Check, len(checks))}

	for _, c := range checks {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds c after the already registered checks.
func (r *Registry) Register(c Check) error {
	id := c.ID()
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCheck, id)
	}

	r.byID[id] = c
	r.order = append(r.order, c)

	return nil
}

// Get returns the check registered under id.
func (r *Registry) Get(id string) (Check, bool) {
	c, ok := r.byID[id]

	return c, ok
}

// All returns every registered check in registration order.
func (r *Registry) All() []Check {
	out := make([]Check, len(r.order))
	copy(out, r.order)

	return out
}

// Enabled returns the checks named in ids, in the order given.
// An empty ids selects every check.
func (r *Registry) Enabled(ids []string) ([]Check, error) {
	if len(ids) == 0 {
		return r.All(), nil
	}

	out := make([]Check, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		c, ok := r.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, id)
		}

		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}
