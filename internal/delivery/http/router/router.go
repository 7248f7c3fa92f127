// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"credgate/internal/delivery/http/middleware"
	"credgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CaptchaHandler *handler.CaptchaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	captchaHandler *handler.CaptchaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		captchaHandler: params.CaptchaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/users")
	{
		users.GET("/captcha", r.captchaHandler.GenerateCaptcha)
		users.POST("/register", r.userHandler.RegisterUser)
		users.POST("/login", r.userHandler.Login)
		users.GET("/validate-token", r.userHandler.ValidateToken)
		users.GET("/profile", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
	}
}
