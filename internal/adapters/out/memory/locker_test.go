package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"bakery/internal/adapters/out/memory"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLocker_Lock(t *testing.T) {
	t.Run("should reject second holder until unlocked", func(t *testing.T) {
		ctx := t.Context()
		locker := memory.NewOrderLocker()
		id := kernel.NewUUID()

		unlock, err := locker.Lock(ctx, id)
		require.NoError(t, err)

		_, err = locker.Lock(ctx, id)
		require.ErrorIs(t, err, ports.ErrLockNotAcquired)

		require.NoError(t, unlock(ctx))
		_, err = locker.Lock(ctx, id)
		require.NoError(t, err)
	})

	t.Run("should lock different orders independently", func(t *testing.T) {
		ctx := t.Context()
		locker := memory.NewOrderLocker()

		_, err := locker.Lock(ctx, kernel.NewUUID())
		require.NoError(t, err)
		_, err = locker.Lock(ctx, kernel.NewUUID())
		require.NoError(t, err)
	})

	t.Run("should ignore repeated unlock of a released lock", func(t *testing.T) {
		ctx := t.Context()
		locker := memory.NewOrderLocker()
		id := kernel.NewUUID()

		first, err := locker.Lock(ctx, id)
		require.NoError(t, err)
		require.NoError(t, first(ctx))

		second, err := locker.Lock(ctx, id)
		require.NoError(t, err)
		require.NoError(t, first(ctx))

		_, err = locker.Lock(ctx, id)
		require.ErrorIs(t, err, ports.ErrLockNotAcquired)
		require.NoError(t, second(ctx))
	})

	t.Run("should grant lock to exactly one concurrent caller", func(t *testing.T) {
		ctx := t.Context()
		locker := memory.NewOrderLocker()
		id := kernel.NewUUID()

		var acquired atomic.Int32
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := locker.Lock(ctx, id); err == nil {
					acquired.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), acquired.Load())
	})
}
