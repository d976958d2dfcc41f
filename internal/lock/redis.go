package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyPrefix = "task-track:lock:"

// unlockScript deletes the key only if it still holds our token, so an
// expired lock taken over by another replica is never released by us.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker with SET NX PX so replicas share locks
type RedisLocker struct {
	client       *redis.Client
	ttl          time.Duration
	waitTimeout  time.Duration
	retryBackoff time.Duration
	logger       *zap.Logger
}

// NewRedisLocker creates a RedisLocker. ttl caps how long a crashed holder
// can block a key.
func NewRedisLocker(client *redis.Client, ttl, waitTimeout time.Duration, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{
		client:       client,
		ttl:          ttl,
		waitTimeout:  waitTimeout,
		retryBackoff: 25 * time.Millisecond,
		logger:       logger,
	}
}

// Acquire locks all keys in ascending order
func (l *RedisLocker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}

	token := uuid.NewString()
	var releases []func()
	for _, key := range normalizeKeys(keys) {
		release, err := l.acquireOne(ctx, keyPrefix+key, token)
		if err != nil {
			releaseAll(releases)
			return nil, err
		}
		releases = append(releases, release)
	}

	var once sync.Once
	return func() {
		once.Do(func() { releaseAll(releases) })
	}, nil
}

func (l *RedisLocker) acquireOne(ctx context.Context, key, token string) (func(), error) {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrLockTimeout, key, ctx.Err())
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-time.After(l.retryBackoff):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", ErrLockTimeout, key, ctx.Err())
		}
	}
}

func (l *RedisLocker) release(key, token string) {
	// release must succeed even when the request context is already gone
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := unlockScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.logger.Warn("Failed to release lock, it will expire after ttl",
			zap.String("key", key),
			zap.Duration("ttl", l.ttl),
			zap.Error(err),
		)
	}
}
