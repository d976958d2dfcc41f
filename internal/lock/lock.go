// Package lock serializes read-modify-write cycles on board sequences.
//
// Keys are always acquired in ascending order so that callers locking more
// than one board cannot deadlock each other.
package lock

import (
	"context"
	"errors"
	"sort"
)

// ErrLockTimeout is returned when a lock could not be acquired before the
// context deadline or the locker's wait timeout.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// Locker acquires exclusive locks on a set of keys.
// The returned release function must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (release func(), err error)
}

// normalizeKeys sorts keys and drops duplicates
func normalizeKeys(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	n := 0
	for i, k := range out {
		if i > 0 && k == out[n-1] {
			continue
		}
		out[n] = k
		n++
	}
	return out[:n]
}

// releaseAll releases previously acquired keys in reverse order
func releaseAll(releases []func()) {
	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}
