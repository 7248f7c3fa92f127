// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/delivery/http/middleware"
	"credgate/internal/delivery/http/response"
	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32"`
	Password  string `json:"password" validate:"required"`
	CaptchaID string `json:"captchaId" validate:"required"`
	Captcha   string `json:"captcha" validate:"required"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	CaptchaID string `json:"captchaId" validate:"required"`
	Captcha   string `json:"captcha" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// RegisterResponse adds the session token to the new account.
type RegisterResponse struct {
	UserResponse
	Token string `json:"token"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	return c.Validate(req)
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Username:  req.Username,
		Password:  req.Password,
		CaptchaID: req.CaptchaID,
		Captcha:   req.Captcha,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		UserResponse: toUserResponse(output.User),
		Token:        output.Token,
	})
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		CaptchaID: req.CaptchaID,
		Captcha:   req.Captcha,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:   output.Token,
		Message: "Login successful",
	})
}

// ValidateToken always answers 200; a missing or malformed header is simply invalid.
func (h *UserHandler) ValidateToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	valid := ok && h.uc.ValidateToken(c.Request().Context(), token)

	return response.Success(c, http.StatusOK, ValidateTokenResponse{Valid: valid})
}

// GetProfile runs behind AuthMiddleware.Authenticate.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), deliverycontext.GetToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
