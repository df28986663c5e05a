package llm

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheProvider is a decorator that answers repeated identical requests
// from memory. Only successful responses are cached.
type CacheProvider struct {
	inner Provider
	cache *lru.Cache[string, Response]
}

// WithCache wraps a Provider with an LRU response cache holding up to
// size entries. A size below 1 returns p unchanged.
func WithCache(p Provider, size int) (Provider, error) {
	if size < 1 {
		return p, nil
	}
	c, err := lru.New[string, Response](size)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	return &CacheProvider{inner: p, cache: c}, nil
}

func (c *CacheProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key := req.Fingerprint()
	if hit, ok := c.cache.Get(key); ok {
		hit.Cached = true
		// Served tokens were already paid for by the original call.
		hit.Usage = Usage{}
		return &hit, nil
	}

	resp, err := c.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *resp)
	return resp, nil
}

func (c *CacheProvider) ModelID() string {
	return c.inner.ModelID()
}

// Len reports the number of cached responses.
func (c *CacheProvider) Len() int {
	return c.cache.Len()
}
