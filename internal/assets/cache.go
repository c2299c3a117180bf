package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedStore fronts another Store with a Redis URL cache. Resolution is
// cheap but happens on every owner read; the cache mostly exists so that
// deletion has a single place to invalidate previously handed-out references
// (a deleted certificate must not keep serving its asset URLs from cache).
type CachedStore struct {
	inner Store
	rdb   redis.Cmdable
	ttl   time.Duration
}

func NewCachedStore(inner Store, rdb redis.Cmdable, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(certificateNumber, ref string) string {
	return "asset_url:" + certificateNumber + ":" + ref
}

func (c *CachedStore) PublicURL(ctx context.Context, certificateNumber, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	key := cacheKey(certificateNumber, ref)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	// Cache misses and Redis failures both fall through to the inner store;
	// the cache is an optimization, not a dependency.

	url, err := c.inner.PublicURL(ctx, certificateNumber, ref)
	if err != nil {
		return "", err
	}
	if url != "" {
		_ = c.rdb.Set(ctx, key, url, c.ttl).Err()
	}
	return url, nil
}

// RemoveAll deletes the assets and drops every cached URL for the
// certificate.
func (c *CachedStore) RemoveAll(ctx context.Context, certificateNumber string) error {
	if err := c.inner.RemoveAll(ctx, certificateNumber); err != nil {
		return err
	}

	pattern := cacheKey(certificateNumber, "*")
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cached asset urls: %w", err)
	}
	if len(keys) > 0 {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("invalidate cached asset urls: %w", err)
		}
	}
	return nil
}
