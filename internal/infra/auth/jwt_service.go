// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"sync"
	"sync/atomic"
	"time"

	"credgate/config"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"
	"credgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// signingState is swapped as a whole so a reader never sees a key from one
// configuration paired with a TTL (or half a key) from another.
type signingState struct {
	key        []byte
	defaultTTL time.Duration
}

// JWTService issues and checks HS256 tokens. The signing key and default TTL
// may be replaced at runtime; tokens signed under a previous key simply stop validating.
type JWTService struct {
	state   atomic.Pointer[signingState]
	writeMu sync.Mutex
	issuer  string
	now     func() time.Time
}

// Option customises a JWTService.
type Option func(*JWTService)

// WithIssuer sets the "iss" claim on issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *JWTService) {
		s.issuer = issuer
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewTokenService builds a JWTService without checking the key. A missing or
// short key is reported by Issue, so a misconfigured service fails on first use.
func NewTokenService(key []byte, defaultTTL time.Duration, opts ...Option) *JWTService {
	s := &JWTService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(&signingState{key: cloneKey(key), defaultTTL: defaultTTL})

	return s
}

// NewJWTService is the Fx constructor. Unlike NewTokenService it refuses to
// start with an unusable signing key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token == nil {
		return nil, errors.Wrap(domainerrors.ErrSigningKeyMissing, "token config must be provided")
	}

	key := []byte(cfg.Token.SigningKey)
	if err := checkSigningKey(key); err != nil {
		return nil, err
	}

	return NewTokenService(key, cfg.Token.DefaultTTL, WithIssuer(cfg.Token.Issuer)), nil
}

// Issue signs a token for subject expiring ttl from now. Negative values are kept as given.
func (s *JWTService) Issue(subject string, ttl time.Duration) (string, error) {
	st := s.state.Load()
	if err := checkSigningKey(st.key); err != nil {
		return "", err
	}

	now := s.now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(st.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate reports whether token carries a good signature and exp is still in the future.
func (s *JWTService) Validate(tokenString string) bool {
	_, err := s.parse(tokenString, jwt.WithExpirationRequired())

	return err == nil
}

// GetSubject checks the signature and returns "sub". It does not look at exp.
func (s *JWTService) GetSubject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	return claims.Subject, nil
}

// DefaultTTL returns the lifetime for tokens issued at login or registration.
func (s *JWTService) DefaultTTL() time.Duration {
	return s.state.Load().defaultTTL
}

// Rotate installs a new signing key. The old key is kept if the new one is unusable.
func (s *JWTService) Rotate(key []byte) error {
	if err := checkSigningKey(key); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.state.Load()
	s.state.Store(&signingState{key: cloneKey(key), defaultTTL: cur.defaultTTL})

	return nil
}

// SetDefaultTTL changes the lifetime used for subsequently issued tokens.
func (s *JWTService) SetDefaultTTL(ttl time.Duration) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.state.Load()
	s.state.Store(&signingState{key: cur.key, defaultTTL: ttl})
}

func (s *JWTService) parse(tokenString string, opts ...jwt.ParserOption) (*service.Claims, error) {
	st := s.state.Load()
	if len(st.key) == 0 {
		return nil, domainerrors.ErrSigningKeyMissing
	}

	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return st.key, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

func checkSigningKey(key []byte) error {
	if len(key) == 0 {
		return domainerrors.ErrSigningKeyMissing
	}
	if len(key) < config.MinSigningKeyLength {
		return errors.Wrapf(domainerrors.ErrSigningKeyTooShort, "need %d bytes, got %d", config.MinSigningKeyLength, len(key))
	}

	return nil
}

func cloneKey(key []byte) []byte {
	if key == nil {
		return nil
	}

	return append([]byte(nil), key...)
}
