// Package lookup provides a concurrent memoizing cache guaranteeing
// at-most-one computation per key under contention.
//
// Successful results are retained forever; failed computations are not
// cached, so a later call retries. Concurrent callers for the same key
// share a single in-flight computation and its result.
package lookup

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes values by string key.
// The zero value is not usable; construct with New.
type Cache[V any] struct {
	group   singleflight.Group
	mu      sync.RWMutex
	settled map[string]V
}

// New returns an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{settled: make(map[string]V)}
}

// Get returns the value for key, invoking compute at most once across
// concurrent callers when the key is not yet settled.
func (c *Cache[V]) Get(key string, compute func() (V, error)) (V, error) {
	c.mu.RLock()
	v, ok := c.settled[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	out, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have settled the key between the fast
		// path and entering the group.
		c.mu.RLock()
		v, ok := c.settled[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := compute()
		if err != nil {
			return v, err
		}
		c.mu.Lock()
		c.settled[key] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}

// Peek returns the settled value for key without computing.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.settled[key]
	return v, ok
}

// Len returns the number of settled keys.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.settled)
}

// Delete removes a settled key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.settled, key)
}
