package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"borrowdung/config"
	"borrowdung/infras/otel"
	"borrowdung/infras/redis"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = goRedis.Nil
)

// Cache is the key/value storage behind sessions and the rate limiter.
// A duration of 0 seconds stores the value without expiry.
type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
	// Increment adds one to the counter at key and returns the new count. The
	// expiry is set only when the counter is created, so it never slides.
	Increment(ctx context.Context, key string, duration int) (int64, error)
}

// New returns the backend selected by SESSION_STORE.
func New(cfg *config.Config, ot otel.Otel) Cache {
	if cfg.Session.Store == config.SessionStoreRedis {
		return NewRedisCache(redis.New(cfg), ot)
	}

	log.Info().Msg("Using in-memory cache backend")

	return NewMemoryCache(ot)
}

type redisCache struct {
	client *goRedis.Client
	otel   otel.Otel
}

func NewRedisCache(client *goRedis.Client, ot otel.Otel) Cache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear implements Cache.
func (cache *redisCache) Clear(ctx context.Context, prefix string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	iter := cache.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		if err = cache.client.Del(ctx, key).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Str("Cache", "Clear").Msg("failed to del cache")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}
	}

	if err = iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}

// Increment implements Cache.
func (cache *redisCache) Increment(ctx context.Context, key string, duration int) (res int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var incr *goRedis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		if duration > 0 {
			pipe.ExpireNX(ctx, key, time.Second*time.Duration(duration))
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("Cache", "Increment").Msg("failed to incr cache")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return incr.Val(), nil
}

// Delete implements Cache.
func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("Cache", "Delete").Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get implements Cache.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	return decode(cacheValue, value)
}

// Save implements Cache.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	strValue, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("Cache", "Save").Msg("failed to marshal cache")

		return err
	}

	err = cache.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("Cache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("Cache", "Save").Str("key", key).Msg("success to set cache")

	return nil
}

func encode(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal cache value: %w", err)
		}

		return string(raw), nil
	}
}

func decode(raw string, value any) error {
	switch v := value.(type) {
	case *string:
		*v = raw

		return nil
	default:
		if err := json.Unmarshal([]byte(raw), value); err != nil {
			log.Error().Err(err).Str("Cache", "Get").Msg("failed to unmarshal cache")

			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}

		return nil
	}
}
