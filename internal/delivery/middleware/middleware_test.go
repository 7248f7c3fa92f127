package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"credgate/config"
	deliverycontext "credgate/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	mw := NewRequestIDMiddleware(logger)

	var seenCtxID string
	e.GET("/", mw.Process(func(c echo.Context) error {
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLogger(c.Request().Context()).Info("inside")

		return c.NoContent(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, seenCtxID)
	assert.Contains(t, buf.String(), "request_id="+headerID)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.GET("/", NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.GET("/", NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_DebugLogsStatus(t *testing.T) {
	logger, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.GET("/missing", NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?token=secret", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.NotContains(t, buf.String(), "secret")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	logger, buf := newBufferLogger()

	e := echo.New()
	e.GET("/", NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
