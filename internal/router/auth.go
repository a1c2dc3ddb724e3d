package router

import (
	"net/http"

	"github.com/deppfellow/auth-validation/internal/handler"
	"github.com/deppfellow/auth-validation/internal/validation"
	"github.com/labstack/echo/v4"
)

// registerAuthRoutes registers the validation endpoints.
//
//	POST /auth/login/validate   -> 200 with the normalized login payload
//	POST /auth/signup/validate  -> 200 with the normalized signup payload
//	POST /auth/login/check      -> 204 when the payload passes
//	POST /auth/signup/check     -> 204 when the payload passes
//
// Failures answer 400 with one error per invalid field.
func registerAuthRoutes(g *echo.Group, h *handler.Handlers) {
	auth := g.Group("/auth")
	base := h.Auth.Handler

	auth.POST("/login/validate", handler.Handle(base, validation.LoginSchema, h.Auth.ValidateLogin, http.StatusOK))
	auth.POST("/signup/validate", handler.Handle(base, validation.SignupSchema, h.Auth.ValidateSignup, http.StatusOK))

	auth.POST("/login/check", handler.HandleNoContent(base, validation.LoginSchema, h.Auth.Accept, http.StatusNoContent))
	auth.POST("/signup/check", handler.HandleNoContent(base, validation.SignupSchema, h.Auth.Accept, http.StatusNoContent))
}
