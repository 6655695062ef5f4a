// Package cache provides a small thread-safe LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
package cache

import "sync"

// node is an entry in the recency list. The head is the most recently used.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// Cache is an LRU cache holding at most Capacity entries. A capacity of 0
// means unlimited.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	head     *node[K, V]
	tail     *node[K, V]
	capacity int

	hits, misses uint64
}

// New creates a cache that keeps at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: max(capacity, 0),
	}
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(n)
	return n.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, or stores and returns the
// result of create. create runs under the cache lock, so it is called at
// most once per missing key. A failed create stores nothing.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.entries[key]; ok {
		c.hits++
		c.moveToFront(n)
		return n.value, nil
	}
	c.misses++
	v, err := create()
	if err != nil {
		return v, err
	}
	c.set(key, v)
	return v, nil
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.unlink(n)
	delete(c.entries, key)
	return true
}

// Clear removes every entry. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.head, c.tail = nil, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:      len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// set stores an entry. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}
	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)
	if c.capacity > 0 && len(c.entries) > c.capacity {
		oldest := c.tail
		c.unlink(oldest)
		delete(c.entries, oldest.key)
	}
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev, n.next = nil, c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
