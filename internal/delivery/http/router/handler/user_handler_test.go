package handler

import (
	"net/http"
	"testing"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	mockusecase "credgate/internal/mocks/usecase"
	"credgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const registerBody = `{"username":"alice","password":"Str0ng!Pass","captchaId":"h-1","captcha":"123456"}`

func newUserHandlerEcho(t *testing.T) (*echo.Echo, *mockusecase.MockUserUsecase) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	e := newTestEcho()
	e.POST("/register", h.RegisterUser)
	e.POST("/login", h.Login)
	e.GET("/validate-token", h.ValidateToken)
	e.GET("/profile", h.GetProfile, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetAuth(c, "tok", "alice")

			return next(c)
		}
	})

	return e, uc
}

func TestUserHandler_RegisterUser(t *testing.T) {
	e, uc := newUserHandlerEcho(t)
	id := uuid.New()

	uc.EXPECT().
		RegisterUser(mock.Anything, &usecase.RegisterUserInput{
			Username:  "alice",
			Password:  "Str0ng!Pass",
			CaptchaID: "h-1",
			Captcha:   "123456",
		}).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: id, Username: "alice"}, Token: "jwt"}, nil)

	rec := doRequest(e, http.MethodPost, "/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got RegisterResponse
	decodeData(t, rec, &got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "jwt", got.Token)
	assert.NotContains(t, rec.Body.String(), "Str0ng!Pass")
}

func TestUserHandler_RegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{
			name:    "username too short",
			body:    `{"username":"al","password":"p","captchaId":"h","captcha":"1"}`,
			details: "username must be at least 3 characters",
		},
		{
			name:    "username too long",
			body:    `{"username":"abcdefghijklmnopqrstuvwxyz0123456","password":"p","captchaId":"h","captcha":"1"}`,
			details: "username must be at most 32 characters",
		},
		{
			name:    "missing captcha",
			body:    `{"username":"alice","password":"p","captchaId":"h"}`,
			details: "captcha is required",
		},
		{
			name:    "malformed json",
			body:    `{"username":`,
			details: "request body is not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newUserHandlerEcho(t)

			rec := doRequest(e, http.MethodPost, "/register", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), info.Code)
			assert.Contains(t, info.Details, tt.details)
		})
	}
}

func TestUserHandler_RegisterUser_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"captcha", domainerrors.ErrCaptchaInvalid, http.StatusBadRequest, "CAPTCHA_INVALID"},
		{"duplicate", domainerrors.ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{"weak password", domainerrors.ErrPasswordStrength.WithDetails("password must contain an uppercase letter"), http.StatusBadRequest, "PASSWORD_STRENGTH"},
		{"hash failure", domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt"), http.StatusInternalServerError, "PASSWORD_HASH_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newUserHandlerEcho(t)
			uc.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(e, http.MethodPost, "/register", registerBody, nil)

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	e, uc := newUserHandlerEcho(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Username:  "alice",
			Password:  "Str0ng!Pass",
			CaptchaID: "h-1",
			Captcha:   "123456",
		}).
		Return(&usecase.LoginOutput{Token: "jwt", User: &entity.User{Username: "alice"}}, nil)

	rec := doRequest(e, http.MethodPost, "/login", registerBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got LoginResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "jwt", got.Token)
	assert.Equal(t, "Login successful", got.Message)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e, uc := newUserHandlerEcho(t)
	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/login", registerBody, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", info.Code)
	assert.Nil(t, info.Details)
}

func TestUserHandler_ValidateToken(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t)
		uc.EXPECT().ValidateToken(mock.Anything, "good").Return(true)

		rec := doRequest(e, http.MethodGet, "/validate-token", "", map[string]string{echo.HeaderAuthorization: "Bearer good"})

		require.Equal(t, http.StatusOK, rec.Code)
		var got ValidateTokenResponse
		decodeData(t, rec, &got)
		assert.True(t, got.Valid)
	})

	t.Run("rejected", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t)
		uc.EXPECT().ValidateToken(mock.Anything, "stale").Return(false)

		rec := doRequest(e, http.MethodGet, "/validate-token", "", map[string]string{echo.HeaderAuthorization: "bearer stale"})

		require.Equal(t, http.StatusOK, rec.Code)
		var got ValidateTokenResponse
		decodeData(t, rec, &got)
		assert.False(t, got.Valid)
	})

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		t.Run("no bearer "+header, func(t *testing.T) {
			e, _ := newUserHandlerEcho(t)

			rec := doRequest(e, http.MethodGet, "/validate-token", "", map[string]string{echo.HeaderAuthorization: header})

			require.Equal(t, http.StatusOK, rec.Code)
			var got ValidateTokenResponse
			decodeData(t, rec, &got)
			assert.False(t, got.Valid)
		})
	}
}

func TestUserHandler_GetProfile(t *testing.T) {
	e, uc := newUserHandlerEcho(t)
	id := uuid.New()
	uc.EXPECT().GetProfile(mock.Anything, "tok").Return(&entity.User{ID: id, Username: "alice", PasswordHash: "$2a$12$secret"}, nil)

	rec := doRequest(e, http.MethodGet, "/profile", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, UserResponse{ID: id, Username: "alice"}, got)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestUserHandler_GetProfile_UserGone(t *testing.T) {
	e, uc := newUserHandlerEcho(t)
	uc.EXPECT().GetProfile(mock.Anything, "tok").Return(nil, domainerrors.ErrUserNotFound)

	rec := doRequest(e, http.MethodGet, "/profile", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Code)
}
