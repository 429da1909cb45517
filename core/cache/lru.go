// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package cache provides a bounded scratch store for validation passes.

[LRUCache] satisfies [checks.Store]. Once it holds as many entries as it
was sized for, adding a new key drops the entry that was used least
recently. A dropped verdict is simply recomputed by the check that needs
it, so the bound trades CPU for memory on very large inputs.
*/
package cache

import (
	"container/list"
	"errors"
	"sync"
)

var ErrInvalidSize = errors.New("must provide a positive size")

// LRUCache is a fixed-capacity, least-recently-used cache that is safe for concurrent use.
// Instances must be constructed with [NewLRUCache]; the zero value is not ready for use.
type LRUCache struct {
	size      int
	evictList *list.List               // front is the most recently used entry
	items     map[string]*list.Element // key to its element in evictList
	lock      sync.Mutex
	stats     Stats
}

// Stats counts cache traffic since construction.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

type entry struct {
	key   string
	value any
}

// NewLRUCache creates a cache holding at most size entries.
//
// It returns [ErrInvalidSize] if size is not a positive integer.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return &LRUCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element, size),
	}, nil
}

// Add stores value under key and marks it as most recently used.
// Add reports whether an older entry was evicted to make room.
func (c *LRUCache) Add(key string, value any) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.items[key]; ok {
		c.evictList.MoveToFront(el)
		el.Value.(*entry).value = value

		return false
	}

	c.items[key] = c.evictList.PushFront(&entry{key: key, value: value})

	if c.evictList.Len() <= c.size {
		return false
	}

	c.removeElement(c.evictList.Back())
	c.stats.Evictions++

	return true
}

// Get returns the value for key and marks it as most recently used.
func (c *LRUCache) Get(key string) (any, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++

		return nil, false
	}

	c.stats.Hits++
	c.evictList.MoveToFront(el)

	return el.Value.(*entry).value, true
}

// Peek returns the value for key without touching the eviction order or
// the statistics.
func (c *LRUCache) Peek(key string) (any, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}

	return el.Value.(*entry).value, true
}

// Remove deletes key and reports whether it was present.
func (c *LRUCache) Remove(key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	el, ok := c.items[key]
	if ok {
		c.removeElement(el)
	}

	return ok
}

// Keys returns the cached keys from the oldest to the newest.
func (c *LRUCache) Keys() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	keys := make([]string, 0, len(c.items))
	for el := c.evictList.Back(); el != nil; el = el.Prev() {
		keys = append(keys, el.Value.(*entry).key)
	}

	return keys
}

// Len returns the number of cached entries.
func (c *LRUCache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.evictList.Len()
}

// Stats returns a snapshot of the traffic counters.
func (c *LRUCache) Stats() Stats {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.stats
}

func (c *LRUCache) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
