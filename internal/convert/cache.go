package convert

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"inputtype-generator/internal/schema"
)

// CacheKey identifies one produced input type across conversion calls.
type CacheKey struct {
	Source  *schema.Record
	Prefix  string
	Postfix string
}

// Cache stores produced input types across conversion calls so repeated
// conversions return the same instance.
type Cache interface {
	Get(key CacheKey) (*schema.Input, bool)
	Add(key CacheKey, in *schema.Input)
}

// LRUCache is a size-bounded Cache safe for concurrent use.
type LRUCache struct {
	entries *lru.Cache[CacheKey, *schema.Input]
}

// NewLRUCache creates an LRUCache holding at most size input types.
func NewLRUCache(size int) (*LRUCache, error) {
	entries, err := lru.New[CacheKey, *schema.Input](size)
	if err != nil {
		return nil, fmt.Errorf("creating input type cache: %w", err)
	}

	return &LRUCache{entries: entries}, nil
}

// Get returns the cached input type for key.
func (c *LRUCache) Get(key CacheKey) (*schema.Input, bool) {
	return c.entries.Get(key)
}

// Add stores in under key, evicting the least recently used entry if full.
func (c *LRUCache) Add(key CacheKey, in *schema.Input) {
	c.entries.Add(key, in)
}

// Len returns the number of cached input types.
func (c *LRUCache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached input type.
func (c *LRUCache) Purge() {
	c.entries.Purge()
}
