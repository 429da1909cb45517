// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"strconv"
	"sync"
)

// Store is the scratch space of one validation pass.
//
// Implementations must be safe for concurrent use. Add reports whether an
// existing entry was evicted to make room.
type Store interface {
	Get(key string) (any, bool)
	Add(key string, value any) bool
}

// CacheSlot is what a check receives to memoise per-unit results.
// Form separates the singular source (0) from the plural one (1).
//
// The zero value disables caching.
type CacheSlot struct {
	Store Store
	Form  int
}

// PassStore is an unbounded [Store] backed by a map.
type PassStore struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewPassStore returns an empty PassStore.
func NewPassStore() *PassStore {
	return &PassStore{items: make(map[string]any)}
}

func (s *PassStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]

	return v, ok
}

func (s *PassStore) Add(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value

	return false
}

// Len returns the number of cached entries.
func (s *PassStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// CacheKey returns the key under which check results for unit are stored.
func CacheKey(checkID, unitID string, form int) string {
	return "check-" + checkID + "-" + unitID + "-" + strconv.Itoa(form)
}

// GetCache returns the value check stored for unit in slot.
func GetCache(check Check, unit Unit, slot CacheSlot) (any, bool) {
	if slot.Store == nil || unit == nil {
		return nil, false
	}

	return slot.Store.Get(CacheKey(check.ID(), unit.ID(), slot.Form))
}

// SetCache stores value for check and unit in slot. It is a no-op when
// slot has no store.
func SetCache(check Check, unit Unit, slot CacheSlot, value any) {
	if slot.Store == nil || unit == nil {
		return
	}

	slot.Store.Add(CacheKey(check.ID(), unit.ID(), slot.Form), value)
}
