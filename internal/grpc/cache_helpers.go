package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second

	// initialGeneration is used until a user's first recorded interview.
	initialGeneration = "0"
)

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	return ttl + jitter
}

func generationKey(userID string) string {
	return fmt.Sprintf("%s:%s", cacheKeyGeneration, userID)
}

// readGeneration returns the user's cache generation. Every cached read for
// the user is keyed by it, so a new generation orphans all older entries at
// once, including writes still in flight for them. ok is false when the
// generation cannot be read; callers then bypass the cache.
func readGeneration(ctx context.Context, c Cacher, logger *zap.Logger, userID string) (gen string, ok bool) {
	err := c.Get(ctx, generationKey(userID), &gen)
	switch {
	case err == nil && gen != "":
		return gen, true
	case err == nil, errors.Is(err, redis.Nil):
		return initialGeneration, true
	default:
		logger.Warn("cache generation unreadable, bypassing cache",
			zap.String("user_id", userID), zap.Error(err))
		return "", false
	}
}

// bumpGeneration stores a fresh generation for the user. It must run after
// the write it publishes has been persisted. The generation never expires;
// the entries it orphans expire with their TTL.
func bumpGeneration(ctx context.Context, c Cacher, logger *zap.Logger, userID, gen string) {
	setCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultSetTimeout)
	defer cancel()

	if err := c.Set(setCtx, generationKey(userID), gen, 0); err != nil {
		logger.Error("failed to bump cache generation; cached reads stay stale until TTL",
			zap.String("user_id", userID), zap.Error(err))
		return
	}
	logger.Debug("cache generation bumped", zap.String("user_id", userID), zap.String("generation", gen))
}

func triggerBackgroundRefresh[T any](
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = sf.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				logger.Warn("background refresh failed",
					zap.String("key", key),
					zap.Error(err))
				return nil, err
			}

			// A refresh racing a generation bump lands under the old
			// generation's key, which no reader uses any more.
			if err := storeValue(ctx, c, key, value, ttl); err != nil {
				logger.Warn("failed to update cache in background",
					zap.String("key", key),
					zap.Error(err))
			} else {
				logger.Debug("cache refreshed in background", zap.String("key", key))
			}

			return value, nil
		})
	}()
}

func storeValue(ctx context.Context, c Cacher, key string, value any, ttl time.Duration) error {
	setCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultSetTimeout)
	defer cancel()

	return c.Set(setCtx, key, value, addTTLJitter(ttl))
}

// fetchAndStore loads the value and writes it to the cache before
// returning, so no write for key is left outstanding once the caller moves on.
func fetchAndStore[T any](
	ctx context.Context,
	c Cacher,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T

	value, err := fn(ctx)
	if err != nil {
		logger.Error("fetch failed", zap.String("key", key), zap.Error(err))
		return zero, err
	}

	if err := storeValue(ctx, c, key, value, ttl); err != nil {
		logger.Warn("failed to set cache on miss", zap.String("key", key), zap.Error(err))
	} else {
		logger.Debug("cache populated on miss", zap.String("key", key))
	}

	return value, nil
}

// FindAndCache implements read-through caching with singleflight and
// refresh-ahead. key must embed the owner's generation (see readGeneration)
// for data that can change.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		triggerBackgroundRefresh(c, sf, key, ttl, logger, fn)
		return cached, nil

	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))

	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		return fetchAndStore(ctx, c, key, ttl, logger, fn)
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}
