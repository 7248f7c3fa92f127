// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"credgate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// CaptchaID is the handle returned by GenerateCaptcha and Captcha the code the user typed.
type RegisterUserInput struct {
	Username  string
	Password  string
	CaptchaID string
	Captcha   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username  string
	Password  string
	CaptchaID string
	Captcha   string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user and a session token.
type RegisterOutput struct {
	User  *entity.User
	Token string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ValidateToken never errors; anything other than a live, correctly signed token is false.
	ValidateToken(ctx context.Context, token string) bool

	// GetProfile resolves the token's subject to a stored user.
	GetProfile(ctx context.Context, token string) (*entity.User, error)
}
