package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"borrowdung/infras/otel"

	goCache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

type memoryCache struct {
	store *goCache.Cache
	otel  otel.Otel
}

// NewMemoryCache keeps values in process memory. Values are stored encoded the
// same way the Redis backend stores them, so both behave alike for callers.
func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		store: goCache.New(goCache.NoExpiration, memoryCleanupInterval),
		otel:  ot,
	}
}

// Clear implements Cache.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	for key := range cache.store.Items() {
		if strings.HasPrefix(key, prefix) {
			cache.store.Delete(key)
		}
	}

	return nil
}

// Increment implements Cache. Counters are held as int64 rather than in the
// encoded form used by Save.
func (cache *memoryCache) Increment(ctx context.Context, key string, duration int) (res int64, err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if cache.store.Add(key, int64(1), expiration(duration)) == nil {
		return 1, nil
	}

	res, err = cache.store.IncrementInt64(key, 1)
	if err != nil && cache.store.Add(key, int64(1), expiration(duration)) == nil {
		// expired between the two calls
		return 1, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return res, nil
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.store.Delete(key)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, found := cache.store.Get(key)
	if !found {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	str, _ := raw.(string)

	return decode(str, value)
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	strValue, err := encode(value)
	if err != nil {
		return err
	}

	cache.store.Set(key, strValue, expiration(duration))

	return nil
}

func expiration(duration int) time.Duration {
	if duration > 0 {
		return time.Duration(duration) * time.Second
	}

	return goCache.NoExpiration
}
