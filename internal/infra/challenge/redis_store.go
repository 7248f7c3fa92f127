package challenge

import (
	"context"
	"log/slog"
	"time"

	"credgate/internal/domain/entity"
	"credgate/internal/domain/service"
	"credgate/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "credgate:captcha:"

// verifyScript compares and deletes in one step so that concurrent callers
// on different instances still see at most one success per handle.
var verifyScript = redis.NewScript(`
local stored = redis.call('GET', KEYS[1])
if not stored then
	return 0
end
if stored == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
return 0
`)

// RedisStore keeps challenges in Redis with a native TTL, so several service
// instances can share them.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	length int
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

var _ service.ChallengeStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed store. An empty prefix falls back to "credgate:captcha:".
func NewRedisStore(client redis.UniversalClient, prefix string, length int, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
		length: length,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *RedisStore) key(handle string) string {
	return s.prefix + handle
}

func (s *RedisStore) Generate(ctx context.Context) (*entity.Challenge, error) {
	code, err := GenerateCode(s.length)
	if err != nil {
		return nil, err
	}

	return s.Store(ctx, code)
}

func (s *RedisStore) Store(ctx context.Context, code string) (*entity.Challenge, error) {
	now := s.now()
	ch := &entity.Challenge{
		Handle:    uuid.NewString(),
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	ok, err := s.client.SetNX(ctx, s.key(ch.Handle), code, s.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis challenge: store failed")
	}
	if !ok {
		return nil, errors.Errorf("redis challenge: handle %s already in use", ch.Handle)
	}

	return ch, nil
}

// Verify reports false on any Redis error; the failure is logged, never returned.
func (s *RedisStore) Verify(ctx context.Context, handle, candidate string) bool {
	if handle == "" {
		return false
	}

	result, err := verifyScript.Run(ctx, s.client, []string{s.key(handle)}, candidate).Int()
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "Challenge verification failed against redis",
				slog.String("handle", handle),
				slog.Any("error", err),
			)
		}

		return false
	}

	return result == 1
}
