package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/delivery/http/response"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	mw.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.Equal(t, "req-1", body.Meta.RequestID)

	return rec, body, buf.String()
}

func TestErrorMiddleware_AppErrorWithDetails(t *testing.T) {
	err := errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username is required"))

	rec, body, logs := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.Message(), body.Error.Message)
	assert.Equal(t, "username is required", body.Error.Details)
	assert.Empty(t, logs, "client errors are not logged")
}

func TestErrorMiddleware_ServerErrorHidesDetails(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "insert user")

	rec, body, logs := handleError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, logs, "Request failed")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body, _ := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, http.StatusText(http.StatusNotFound), body.Error.Message)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body, logs := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
	assert.Contains(t, logs, "Unhandled error")
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	mw.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
