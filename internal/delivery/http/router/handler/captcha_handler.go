package handler

import (
	"net/http"
	"time"

	"credgate/internal/delivery/http/response"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CaptchaResponse is returned by GET /api/users/captcha. Code is only
// present when the deployment exposes codes.
type CaptchaResponse struct {
	CaptchaID string    `json:"captchaId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Code      string    `json:"code,omitempty"`
}

type CaptchaHandler struct {
	uc usecase.CaptchaUsecase
}

func NewCaptchaHandler(uc usecase.CaptchaUsecase) *CaptchaHandler {
	return &CaptchaHandler{uc: uc}
}

// GenerateCaptcha issues a fresh one-time challenge.
func (h *CaptchaHandler) GenerateCaptcha(c echo.Context) error {
	output, err := h.uc.GenerateCaptcha(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	// Challenges are single use; caches must never replay one.
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, CaptchaResponse{
		CaptchaID: output.CaptchaID,
		ExpiresAt: output.ExpiresAt,
		Code:      output.Code,
	})
}
