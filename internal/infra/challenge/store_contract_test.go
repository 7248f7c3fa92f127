package challenge

import (
	"context"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"credgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 5 * time.Minute

// storeFactory returns a store using testTTL and a function moving its clock forward.
type storeFactory func(t *testing.T, length int) (service.ChallengeStore, func(time.Duration))

func runStoreContract(t *testing.T, newStore storeFactory) {
	ctx := context.Background()

	t.Run("generate produces six digits and a handle", func(t *testing.T) {
		store, _ := newStore(t, 6)

		ch, err := store.Generate(ctx)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), ch.Code)
		assert.NotEmpty(t, ch.Handle)
		assert.Equal(t, testTTL, ch.ExpiresAt.Sub(ch.CreatedAt))
	})

	t.Run("generate honours configured length", func(t *testing.T) {
		store, _ := newStore(t, 4)

		ch, err := store.Generate(ctx)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), ch.Code)
	})

	t.Run("handles are unique", func(t *testing.T) {
		store, _ := newStore(t, 6)

		seen := make(map[string]struct{})
		for range 100 {
			ch, err := store.Generate(ctx)
			require.NoError(t, err)
			_, dup := seen[ch.Handle]
			require.False(t, dup)
			seen[ch.Handle] = struct{}{}
		}
	})

	t.Run("correct code verifies exactly once", func(t *testing.T) {
		store, _ := newStore(t, 6)

		ch, err := store.Store(ctx, "123456")
		require.NoError(t, err)

		assert.True(t, store.Verify(ctx, ch.Handle, "123456"))
		assert.False(t, store.Verify(ctx, ch.Handle, "123456"), "second verify must fail")
	})

	t.Run("wrong code does not consume", func(t *testing.T) {
		store, _ := newStore(t, 6)

		ch, err := store.Store(ctx, "123456")
		require.NoError(t, err)

		assert.False(t, store.Verify(ctx, ch.Handle, "654321"))
		assert.False(t, store.Verify(ctx, ch.Handle, ""))
		assert.False(t, store.Verify(ctx, ch.Handle, "12345"))
		assert.True(t, store.Verify(ctx, ch.Handle, "123456"))
	})

	t.Run("unknown handle fails", func(t *testing.T) {
		store, _ := newStore(t, 6)

		assert.False(t, store.Verify(ctx, "invalid-id", "123456"))
		assert.False(t, store.Verify(ctx, "", "123456"))
	})

	t.Run("expired challenge fails even with the right code", func(t *testing.T) {
		store, advance := newStore(t, 6)

		ch, err := store.Store(ctx, "123456")
		require.NoError(t, err)

		advance(testTTL + time.Second)

		assert.False(t, store.Verify(ctx, ch.Handle, "123456"))
	})

	t.Run("challenge is usable just before expiry", func(t *testing.T) {
		store, advance := newStore(t, 6)

		ch, err := store.Store(ctx, "000123")
		require.NoError(t, err)

		advance(testTTL - time.Second)

		assert.True(t, store.Verify(ctx, ch.Handle, "000123"))
	})

	t.Run("handles are independent", func(t *testing.T) {
		store, _ := newStore(t, 6)

		first, err := store.Store(ctx, "111111")
		require.NoError(t, err)
		second, err := store.Store(ctx, "111111")
		require.NoError(t, err)

		assert.False(t, store.Verify(ctx, second.Handle, "222222"))
		assert.True(t, store.Verify(ctx, first.Handle, "111111"))
		assert.True(t, store.Verify(ctx, second.Handle, "111111"))
	})

	t.Run("concurrent verify succeeds at most once", func(t *testing.T) {
		store, _ := newStore(t, 6)

		ch, err := store.Generate(ctx)
		require.NoError(t, err)

		const callers = 32
		var (
			wg        sync.WaitGroup
			successes atomic.Int32
			start     = make(chan struct{})
		)
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if store.Verify(ctx, ch.Handle, ch.Code) {
					successes.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), successes.Load())
	})
}
