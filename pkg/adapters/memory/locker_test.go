package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jml312/domino-train/pkg/adapters/memory"
	"github.com/jml312/domino-train/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_Contention(t *testing.T) {
	locker := memory.NewLocker()
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "k", time.Second)
	require.NoError(t, err)

	// Second attempt times out while the first holder is active.
	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(short, "k", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Other keys are independent.
	other, err := locker.Lock(ctx, "other", time.Second)
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, unlock(ctx))
	require.NoError(t, unlock(ctx), "unlock is idempotent")

	again, err := locker.Lock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}

func TestMemoryLocker_ForgetsReleasedKeys(t *testing.T) {
	locker := memory.NewLocker()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		unlock, err := locker.Lock(ctx, fmt.Sprintf("key-%d", i), time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))
	}
	assert.Zero(t, locker.Keys())

	unlock, err := locker.Lock(ctx, "k", time.Second)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(short, "k", time.Second)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, locker.Keys(), "the holder keeps its key")

	require.NoError(t, unlock(ctx))
	assert.Zero(t, locker.Keys())
}

func TestMemoryLocker_WaiterTakesOver(t *testing.T) {
	locker := memory.NewLocker()
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "k", time.Second)
	require.NoError(t, err)

	acquired := make(chan ports.UnlockFunc)
	go func() {
		next, err := locker.Lock(ctx, "k", time.Second)
		if err == nil {
			acquired <- next
		}
		close(acquired)
	}()

	require.NoError(t, unlock(ctx))
	next, ok := <-acquired
	require.True(t, ok, "waiter should acquire the lock")
	assert.Equal(t, 1, locker.Keys())
	require.NoError(t, next(ctx))
	assert.Zero(t, locker.Keys())
}
