package challenge

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMemoryStore(t *testing.T, length int) (*MemoryStore, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	store, err := NewMemoryStore(length, testTTL, discardLogger(), WithMemoryClock(clock.Now))
	require.NoError(t, err)

	return store, clock
}

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T, length int) (service.ChallengeStore, func(time.Duration)) {
		store, clock := newTestMemoryStore(t, length)

		return store, clock.Advance
	})
}

func TestNewMemoryStore_RejectsLength(t *testing.T) {
	_, err := NewMemoryStore(8, testTTL, discardLogger())
	assert.True(t, errors.Is(err, domainerrors.ErrCaptchaLengthInvalid))
}

func TestMemoryStore_ExpiredLookupEvicts(t *testing.T) {
	store, clock := newTestMemoryStore(t, 6)
	ctx := context.Background()

	ch, err := store.Store(ctx, "123456")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	clock.Advance(testTTL)

	assert.False(t, store.Verify(ctx, ch.Handle, "654321"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_SuccessRemovesEntry(t *testing.T) {
	store, _ := newTestMemoryStore(t, 6)
	ctx := context.Background()

	ch, err := store.Generate(ctx)
	require.NoError(t, err)

	require.True(t, store.Verify(ctx, ch.Handle, ch.Code))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_Sweep(t *testing.T) {
	store, clock := newTestMemoryStore(t, 6)
	ctx := context.Background()

	for range 3 {
		_, err := store.Generate(ctx)
		require.NoError(t, err)
	}
	clock.Advance(testTTL / 2)
	fresh, err := store.Generate(ctx)
	require.NoError(t, err)

	clock.Advance(testTTL / 2)

	assert.Equal(t, 3, store.Sweep())
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Verify(ctx, fresh.Handle, fresh.Code))
}

func TestMemoryStore_Janitor(t *testing.T) {
	store, clock := newTestMemoryStore(t, 6)
	ctx := context.Background()

	_, err := store.Generate(ctx)
	require.NoError(t, err)
	clock.Advance(testTTL)

	store.StartJanitor(5 * time.Millisecond)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, store.Stop(stopCtx))
	require.NoError(t, store.Stop(stopCtx))
}

func TestMemoryStore_StopWithoutJanitor(t *testing.T) {
	store, _ := newTestMemoryStore(t, 6)

	assert.NoError(t, store.Stop(context.Background()))
}

func TestMemoryStore_ConcurrentHandles(t *testing.T) {
	store, _ := newTestMemoryStore(t, 6)
	ctx := context.Background()

	var wg sync.WaitGroup
	failures := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, err := store.Generate(ctx)
			if err != nil {
				failures <- err.Error()

				return
			}
			if !store.Verify(ctx, ch.Handle, ch.Code) {
				failures <- ch.Handle
			}
		}()
	}
	wg.Wait()
	close(failures)

	for failure := range failures {
		t.Errorf("independent challenge failed: %s", failure)
	}
	assert.Equal(t, 0, store.Len())
}

// Six digit code: verify true, then false on replay.
func TestScenario_ChallengeRoundTrip(t *testing.T) {
	store, _ := newTestMemoryStore(t, 6)
	ctx := context.Background()

	ch, err := store.Generate(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, ch.Code)

	assert.True(t, store.Verify(ctx, ch.Handle, ch.Code))
	assert.False(t, store.Verify(ctx, ch.Handle, ch.Code))
}
