// Package middleware contains the echo middleware specific to the HTTP API.
package middleware

import (
	"strings"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/delivery/http/response"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// AuthMiddleware rejects requests without a live bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate checks signature and expiry, then stores the token and its
// subject on the echo.Context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Authorization header must carry a Bearer token")
		}

		if !m.tokenSvc.Validate(token) {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		subject, err := m.tokenSvc.GetSubject(token)
		if err != nil || subject == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		deliverycontext.SetAuth(c, token, subject)

		return next(c)
	}
}

// BearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
