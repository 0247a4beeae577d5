// Package collection provides an insertion-ordered keyed collection.
package collection

// Collection keeps records in insertion order and indexes them by key.
// Duplicate keys are allowed; Update and Remove act on every record that
// carries the key.
type Collection[K comparable, T any] struct {
	keyOf func(T) K
	items []T
	index map[K]int // key -> position of first occurrence
}

// New creates an empty collection using keyOf to derive each record's key.
func New[K comparable, T any](keyOf func(T) K) *Collection[K, T] {
	return &Collection[K, T]{
		keyOf: keyOf,
		index: make(map[K]int),
	}
}

// From creates a collection seeded with items, preserving their order.
func From[K comparable, T any](keyOf func(T) K, items []T) *Collection[K, T] {
	c := New(keyOf)
	for _, item := range items {
		c.Append(item)
	}
	return c
}

// Append adds item at the end of the collection.
func (c *Collection[K, T]) Append(item T) {
	c.items = append(c.items, item)
	key := c.keyOf(item)
	if _, ok := c.index[key]; !ok {
		c.index[key] = len(c.items) - 1
	}
}

// Get returns the first record with the given key.
func (c *Collection[K, T]) Get(key K) (T, bool) {
	pos, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// Contains reports whether any record carries the key.
func (c *Collection[K, T]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Find returns the first record matching pred.
func (c *Collection[K, T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update applies fn to every record with the given key and reports whether
// any record matched. fn must not change the record's key.
func (c *Collection[K, T]) Update(key K, fn func(*T)) bool {
	if !c.Contains(key) {
		return false
	}
	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			fn(&c.items[i])
		}
	}
	return true
}

// Remove deletes every record with the given key and returns how many were removed.
func (c *Collection[K, T]) Remove(key K) int {
	if !c.Contains(key) {
		return 0
	}
	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if c.keyOf(item) == key {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	// clear the tail so removed records can be collected
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	c.reindex()
	return removed
}

// Len returns the number of records.
func (c *Collection[K, T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the records in insertion order.
func (c *Collection[K, T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Reset replaces the contents with items.
func (c *Collection[K, T]) Reset(items []T) {
	c.items = nil
	c.index = make(map[K]int, len(items))
	for _, item := range items {
		c.Append(item)
	}
}

func (c *Collection[K, T]) reindex() {
	c.index = make(map[K]int, len(c.items))
	for i, item := range c.items {
		key := c.keyOf(item)
		if _, ok := c.index[key]; !ok {
			c.index[key] = i
		}
	}
}
