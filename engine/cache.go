package engine

import (
	"container/list"
	"sync"

	"github.com/katalvlaran/vedicmath/dispatch"
)

// exprCache is a bounded least-recently-used cache from expression text to
// the full dispatch outcome. Storing the outcome rather than the bare
// value keeps cache hits indistinguishable from fresh evaluations: the
// rule name and confidence survive the round trip.
//
// A mutex guards the recency list and index; eviction age is the list
// order itself, so no explicit use counter is needed.
type exprCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	index    map[string]*list.Element
	hits     uint64
	misses   uint64
}

type exprEntry struct {
	key string
	out dispatch.Outcome
}

func newExprCache(capacity int) *exprCache {
	return &exprCache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[string]*list.Element, capacity),
	}
}

// get returns the cached outcome for key, refreshing its recency.
func (c *exprCache) get(key string) (dispatch.Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		c.misses++

		return dispatch.Outcome{}, false
	}
	c.order.MoveToFront(el)
	c.hits++

	return el.Value.(*exprEntry).out, true
}

// put inserts or refreshes key, evicting the least recently used entry
// when the cache is full.
func (c *exprCache) put(key string, out dispatch.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*exprEntry).out = out
		c.order.MoveToFront(el)

		return
	}

	c.index[key] = c.order.PushFront(&exprEntry{key: key, out: out})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*exprEntry).key)
	}
}

// counters returns the hit/miss totals.
func (c *exprCache) counters() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// len returns the number of live entries.
func (c *exprCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
