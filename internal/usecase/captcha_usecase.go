package usecase

import (
	"context"
	"time"
)

// GenerateCaptchaOutput carries what a client needs to answer a challenge.
// Code is only filled when the deployment exposes codes (local development).
type GenerateCaptchaOutput struct {
	CaptchaID string
	Code      string
	ExpiresAt time.Time
}

// CaptchaUsecase hands out one-time challenges for the register and login forms.
type CaptchaUsecase interface {
	GenerateCaptcha(ctx context.Context) (*GenerateCaptchaOutput, error)
}
