package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock acquired through Locker.
type UnlockFunc func(ctx context.Context) error

// Locker provides mutual exclusion per key.
// The solver holds the lock of a puzzle key while it searches, so concurrent
// requests for the same puzzle wait for the cached result instead of
// searching again.
type Locker interface {
	// Lock blocks until the lock for key is acquired or ctx is done.
	// ttl bounds how long a crashed holder can keep the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
