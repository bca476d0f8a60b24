package fhirpath

import (
	"container/list"
	"sync"
	"sync/atomic"
)

const defaultCacheCapacity = 256

// ExpressionCache is a bounded LRU cache of parsed expressions keyed by source.
// It is safe for concurrent use.
type ExpressionCache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type cacheEntry struct {
	source string
	expr   Expression
}

// NewExpressionCache creates a cache holding at most capacity expressions.
// A capacity <= 0 selects a default.
func NewExpressionCache(capacity int) *ExpressionCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &ExpressionCache{
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Compile returns the cached expression for source, parsing it on a miss.
// Parse errors are not cached.
func (c *ExpressionCache) Compile(source string) (Expression, error) {
	c.mu.Lock()
	if el, ok := c.items[source]; ok {
		c.order.MoveToFront(el)
		c.mu.Unlock()
		c.hits.Add(1)
		return el.Value.(*cacheEntry).expr, nil
	}
	c.mu.Unlock()
	c.misses.Add(1)

	expr, err := Parse(source)
	if err != nil {
		return Expression{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[source]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).expr, nil
	}
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.items, oldest.Value.(*cacheEntry).source)
			c.order.Remove(oldest)
		}
	}
	c.items[source] = c.order.PushFront(&cacheEntry{source: source, expr: expr})
	return expr, nil
}

// Len returns the number of cached expressions.
func (c *ExpressionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all cached expressions. Hit and miss counters are kept.
func (c *ExpressionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

type CacheStats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

func (c *ExpressionCache) Stats() CacheStats {
	return CacheStats{
		Size:   c.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
