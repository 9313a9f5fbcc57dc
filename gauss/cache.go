package gauss

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes rules by (family, order). A rule is pure data, so one copy
// can serve every caller; concurrent first requests for the same key share a
// single computation. Failed generations are not cached.
type Cache struct {
	mu    sync.RWMutex
	rules map[cacheKey]Rule
	group singleflight.Group
}

type cacheKey struct {
	family Family
	order  int
}

func (k cacheKey) String() string { return fmt.Sprintf("%v/%d", k.family, k.order) }

// DefaultCache is used by Quadrature and thermal.Model when no cache is given.
var DefaultCache = NewCache()

func NewCache() *Cache {
	return &Cache{rules: make(map[cacheKey]Rule)}
}

// Rule returns a private copy of the cached rule, generating it on first use.
func (c *Cache) Rule(family Family, order int) (r Rule, err error) {
	var (
		key = cacheKey{family, order}
		ok  bool
	)
	if r, ok = c.lookup(key); ok {
		return r.Copy(), nil
	}
	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		if r, ok := c.lookup(key); ok {
			return r, nil
		}
		r, err := NewRule(family, order)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.rules[key] = r
		c.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return
	}
	r = v.(Rule).Copy()
	return
}

func (c *Cache) lookup(key cacheKey) (r Rule, ok bool) {
	c.mu.RLock()
	r, ok = c.rules[key]
	c.mu.RUnlock()
	return
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}
