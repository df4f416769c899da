package resolver

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// FakeFeedCache is an in-memory FeedCache for tests. The Fail* toggles
// inject cache outages so degradation paths are testable.
type FakeFeedCache struct {
	mu      sync.Mutex
	entries map[string]string

	FailGet bool
	FailSet bool
	FailDel bool

	Gets int
	Sets int
	Dels int
}

func NewFakeFeedCache() *FakeFeedCache {
	return &FakeFeedCache{entries: map[string]string{}}
}

func (c *FakeFeedCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	if c.FailGet {
		return "", false, errors.New("cache unavailable")
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *FakeFeedCache) Set(ctx context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	if c.FailSet {
		return errors.New("cache unavailable")
	}
	c.entries[key] = value
	return nil
}

func (c *FakeFeedCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Dels++
	if c.FailDel {
		return errors.New("cache unavailable")
	}
	delete(c.entries, key)
	return nil
}

// Has reports whether a key is currently cached.
func (c *FakeFeedCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
