// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"codeberg.org/transqa/transqa/config"
	"codeberg.org/transqa/transqa/core/cache"
	"codeberg.org/transqa/transqa/core/checks"
	"codeberg.org/transqa/transqa/core/checks/same"
	"codeberg.org/transqa/transqa/core/lexicon"
	"codeberg.org/transqa/transqa/core/patterns"
)

// engine holds the checks configured for this process.
type engine struct {
	runner    checks.Runner
	cacheSize int

	mu sync.Mutex
	// lastCache is the bounded store of the most recent pass, if any.
	lastCache *cache.LRUCache
}

// newEngine compiles patterns, loads the lexicon and selects the enabled
// checks. Every error here is a configuration problem.
func newEngine(cfg *config.Config) (*engine, error) {
	pats, err := patterns.NewRegistry(cfg.Check.ExtraIgnorePatterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile ignore patterns: %w", err)
	}

	lex, err := loadLexicon(cfg.Check.LexiconFile, cfg.Check.ExtraWords)
	if err != nil {
		return nil, err
	}

	registry, err := checks.NewRegistry(
		same.New(pats, lex, same.WithSourceLanguages(cfg.Check.SourceLanguages...)),
	)
	if err != nil {
		return nil, err
	}

	enabled, err := registry.Enabled(cfg.Check.Enabled)
	if err != nil {
		return nil, err
	}

	e := &engine{cacheSize: cfg.Check.CacheSize}

	e.runner = checks.Runner{
		Checks:   enabled,
		NewStore: e.newStore,
		Workers:  cfg.Check.Workers,
	}

	log.Debug().
		Int("words", lex.Len()).
		Strs("categories", lex.Categories()).
		Int("checks", len(enabled)).
		Msg("Prepared checks")

	return e, nil
}

func loadLexicon(path string, extra []string) (*lexicon.Lexicon, error) {
	var (
		lex *lexicon.Lexicon
		err error
	)

	if path != "" {
		lex, err = lexicon.LoadFile(path)
	} else {
		lex, err = lexicon.Default()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	return lex.With(extra...), nil
}

// newStore creates the scratch store for one pass: an LRU when a cache size
// is configured, otherwise an unbounded map.
func (e *engine) newStore() checks.Store {
	if e.cacheSize <= 0 {
		return checks.NewPassStore()
	}

	lru, err := cache.NewLRUCache(e.cacheSize)
	if err != nil {
		log.Warn().Err(err).Int("size", e.cacheSize).Msg("Falling back to an unbounded store")

		return checks.NewPassStore()
	}

	e.mu.Lock()
	e.lastCache = lru
	e.mu.Unlock()

	return lru
}

// cacheStats returns the activity of the last bounded store.
func (e *engine) cacheStats() (cache.Stats, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lastCache == nil {
		return cache.Stats{}, false
	}

	return e.lastCache.Stats(), true
}

func (e *engine) run(ctx context.Context, units []checks.Unit) (*checks.Pass, error) {
	return e.runner.Run(ctx, units)
}
