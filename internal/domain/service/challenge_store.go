package service

import (
	"context"

	"credgate/internal/domain/entity"
)

// ChallengeStore owns the lifecycle of one-time captcha codes.
//
// A challenge moves ABSENT -> ACTIVE -> CONSUMED or EXPIRED, and both terminal
// states look exactly like ABSENT to callers.
type ChallengeStore interface {
	// Generate creates a new ACTIVE challenge with a random numeric code.
	Generate(ctx context.Context) (*entity.Challenge, error)

	// Store creates a new ACTIVE challenge for a code supplied by the caller.
	Store(ctx context.Context, code string) (*entity.Challenge, error)

	// Verify consumes the challenge when candidate matches. Unknown, expired,
	// consumed and mismatched all return false, and a mismatch does not consume.
	// Concurrent calls for one handle see at most one true.
	Verify(ctx context.Context, handle, candidate string) bool
}
