package challenge

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"sync"
	"time"

	"credgate/internal/domain/entity"
	"credgate/internal/domain/service"

	"github.com/google/uuid"
)

type memoryEntry struct {
	code      string
	createdAt time.Time
	expiresAt time.Time
}

// MemoryStore keeps challenges in a process-local map. Suitable for a single
// instance; use the Redis store when several instances share traffic.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	length int
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	started  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

var _ service.ChallengeStore = (*MemoryStore)(nil)

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryClock replaces time.Now, mainly for tests.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates a store issuing codes of length digits that live for ttl.
func NewMemoryStore(length int, ttl time.Duration, logger *slog.Logger, opts ...MemoryOption) (*MemoryStore, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}

	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		length:  length,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *MemoryStore) Generate(ctx context.Context) (*entity.Challenge, error) {
	code, err := GenerateCode(s.length)
	if err != nil {
		return nil, err
	}

	return s.Store(ctx, code)
}

// Store registers code under a freshly minted handle.
func (s *MemoryStore) Store(_ context.Context, code string) (*entity.Challenge, error) {
	now := s.now()
	ch := &entity.Challenge{
		Handle:    uuid.NewString(),
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.entries[ch.Handle] = memoryEntry{code: code, createdAt: ch.CreatedAt, expiresAt: ch.ExpiresAt}
	s.mu.Unlock()

	return ch, nil
}

// Verify checks expiry before the code and deletes the entry on success, all
// under one lock, so only one concurrent caller can observe true.
func (s *MemoryStore) Verify(_ context.Context, handle, candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[handle]
	if !ok {
		return false
	}

	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, handle)

		return false
	}

	if subtle.ConstantTimeCompare([]byte(entry.code), []byte(candidate)) != 1 {
		return false
	}

	delete(s.entries, handle)

	return true
}

// Len returns the number of stored entries, expired ones included until swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Sweep evicts every expired entry and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for handle, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, handle)
			removed++
		}
	}

	return removed
}

// StartJanitor sweeps every interval until Stop is called. Only the first call has an effect.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	if interval <= 0 {
		return
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()

		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 && s.logger != nil {
					s.logger.Debug("Swept expired challenges", slog.Int("removed", removed))
				}
			}
		}
	}()
}

// Stop ends the janitor and waits for it to exit. Safe to call more than once.
func (s *MemoryStore) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
