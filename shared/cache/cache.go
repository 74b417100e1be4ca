package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tzform/infras/otel"
)

const (
	otelScopeName     = "cache"
	otelKeyAttribute  = "cache.key"
	otelHitAttribute  = "cache.hit"
	otelSizeAttribute = "cache.size"
)

// Nil marks a cache miss. Get wraps it so callers match with errors.Is.
const Nil = redis.Nil

// Cache stores JSON documents (or raw strings) with a TTL in seconds.
type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
	Incr(ctx context.Context, key string, window int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

// New returns a redis-backed cache, or a no-op cache that always misses when client is nil.
func New(client *redis.Client, ot otel.Otel) Cache {
	if client == nil {
		return noopCache{}
	}

	return &redisCache{client: client, otel: ot}
}

// traced runs fn inside a span named after op. Misses are not recorded as errors.
func (c *redisCache) traced(ctx context.Context, op, key string, fn func(context.Context, otel.Scope) error) error {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	defer scope.End()

	scope.SetAttribute(otelKeyAttribute, key)

	err := fn(ctx, scope)
	if err != nil && !errors.Is(err, Nil) {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("op", op).Msg("Cache operation failed")
	}

	return err
}

func (c *redisCache) Save(ctx context.Context, key string, value any, duration int) error {
	return c.traced(ctx, "Save", key, func(ctx context.Context, scope otel.Scope) error {
		payload, err := encode(value)
		if err != nil {
			return err
		}

		scope.SetAttribute(otelSizeAttribute, len(payload))

		if err = c.client.Set(ctx, key, payload, seconds(duration)).Err(); err != nil {
			return fmt.Errorf("failed to set cache value: %w", err)
		}

		return nil
	})
}

// Get decodes the stored value into value. A miss is reported as an error wrapping Nil.
func (c *redisCache) Get(ctx context.Context, key string, value any) error {
	return c.traced(ctx, "Get", key, func(ctx context.Context, scope otel.Scope) error {
		payload, err := c.client.Get(ctx, key).Bytes()
		scope.SetAttribute(otelHitAttribute, err == nil)

		if err != nil {
			return fmt.Errorf("failed to get cache value: %w", err)
		}

		return decode(payload, value)
	})
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.traced(ctx, "Delete", key, func(ctx context.Context, _ otel.Scope) error {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete cache value: %w", err)
		}

		return nil
	})
}

// Clear deletes every key matching the SCAN pattern prefix.
func (c *redisCache) Clear(ctx context.Context, prefix string) error {
	return c.traced(ctx, "Clear", prefix, func(ctx context.Context, scope otel.Scope) error {
		var removed int

		iter := c.client.Scan(ctx, 0, prefix, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("failed to delete cache value %q: %w", iter.Val(), err)
			}

			removed++
		}

		scope.SetAttribute(otelSizeAttribute, removed)

		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		return nil
	})
}

// Incr bumps a fixed-window counter, setting its expiry on first use.
func (c *redisCache) Incr(ctx context.Context, key string, window int) (int64, error) {
	var count int64

	err := c.traced(ctx, "Incr", key, func(ctx context.Context, _ otel.Scope) error {
		pipe := c.client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, seconds(window))

		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to increment counter: %w", err)
		}

		count = incr.Val()

		return nil
	})

	return count, err
}

// encode stores strings as-is and everything else as JSON.
func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return payload, nil
}

func decode(payload []byte, value any) error {
	if s, ok := value.(*string); ok {
		*s = string(payload)

		return nil
	}

	if err := json.Unmarshal(payload, value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

type noopCache struct{}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(context.Context, string, any) error {
	return fmt.Errorf("cache disabled: %w", Nil)
}

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Clear(context.Context, string) error { return nil }

// Incr on the no-op cache never limits anything.
func (noopCache) Incr(context.Context, string, int) (int64, error) { return 0, nil }
