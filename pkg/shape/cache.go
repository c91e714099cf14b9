package shape

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of outlines kept by NewCache(0).
const DefaultCacheSize = 64

type cacheKey struct {
	spec Spec
	x, y float64
}

// Cache memoizes outlines by spec and origin. Paths are immutable so a hit
// can be shared freely.
type Cache struct {
	lru *lru.Cache[cacheKey, Path]
}

// NewCache creates an outline cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[cacheKey, Path](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create outline cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Outline returns the cached outline for spec at (x, y), building it on a miss.
// A nil cache builds every time.
func (c *Cache) Outline(spec Spec, x, y float64) Path {
	if c == nil {
		return Outline(spec, x, y)
	}
	key := cacheKey{spec: normalize(spec), x: x, y: y}
	if p, ok := c.lru.Get(key); ok {
		return p
	}
	p := Outline(spec, x, y)
	c.lru.Add(key, p)
	return p
}

// Len returns the number of cached outlines.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge drops all cached outlines.
func (c *Cache) Purge() {
	if c != nil {
		c.lru.Purge()
	}
}

// normalize folds specs that produce the same outline onto one key.
func normalize(s Spec) Spec {
	if s.Circle {
		s.Radius = 0
		return s
	}
	s.Radius = EffectiveRadius(s.Width, s.Height, s.Radius)
	return s
}
