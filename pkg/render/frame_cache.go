package render

// FrameCache keeps one derived resource (typically a GPU texture) per key.
// Keys not requested with Get since the previous Sweep are released.
type FrameCache[K comparable, V any] struct {
	items   map[K]V
	seen    map[K]bool
	create  func(K) V
	release func(V)
}

// NewFrameCache returns a cache that builds values with create and frees
// them with release. release may be nil.
func NewFrameCache[K comparable, V any](create func(K) V, release func(V)) *FrameCache[K, V] {
	return &FrameCache[K, V]{
		items:   make(map[K]V),
		seen:    make(map[K]bool),
		create:  create,
		release: release,
	}
}

// Get returns the value for k, creating it on first use, and marks k as
// in use for the current frame.
func (c *FrameCache[K, V]) Get(k K) V {
	c.seen[k] = true
	if v, ok := c.items[k]; ok {
		return v
	}
	v := c.create(k)
	c.items[k] = v
	return v
}

// Sweep releases every value whose key was not requested since the last
// Sweep and returns how many were released.
func (c *FrameCache[K, V]) Sweep() int {
	n := 0
	for k, v := range c.items {
		if c.seen[k] {
			continue
		}
		if c.release != nil {
			c.release(v)
		}
		delete(c.items, k)
		n++
	}
	clear(c.seen)
	return n
}

// Len returns the number of cached values.
func (c *FrameCache[K, V]) Len() int {
	return len(c.items)
}
