package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryLocker is an in-process keyed mutex. Each key is backed by a
// one-slot channel so waiting can be abandoned when the context ends.
type MemoryLocker struct {
	mu          sync.Mutex
	slots       map[string]*slot
	waitTimeout time.Duration
}

type slot struct {
	ch      chan struct{}
	holders int // goroutines holding or waiting on this slot
}

// NewMemoryLocker creates a MemoryLocker. waitTimeout bounds how long Acquire
// waits in addition to any deadline on the caller's context.
func NewMemoryLocker(waitTimeout time.Duration) *MemoryLocker {
	return &MemoryLocker{
		slots:       make(map[string]*slot),
		waitTimeout: waitTimeout,
	}
}

// Acquire locks all keys in ascending order
func (l *MemoryLocker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}

	var releases []func()
	for _, key := range normalizeKeys(keys) {
		release, err := l.acquireOne(ctx, key)
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

func (l *MemoryLocker) acquireOne(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.holders++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
		return func() {
			<-s.ch
			l.forget(key, s)
		}, nil
	case <-ctx.Done():
		l.forget(key, s)
		return nil, fmt.Errorf("%w: %s: %v", ErrLockTimeout, key, ctx.Err())
	}
}

// forget drops the slot once nobody holds or waits on it
func (l *MemoryLocker) forget(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.holders--
	if s.holders == 0 && l.slots[key] == s {
		delete(l.slots, key)
	}
}

// size reports the number of tracked keys
func (l *MemoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
