package handler

import (
	"github.com/deppfellow/auth-validation/internal/service"
	"github.com/deppfellow/auth-validation/internal/validation"
	"github.com/labstack/echo/v4"
)

// ValidationResponse is the 200 body of a payload that passed its schema.
// Credentials are never echoed back; see the json tags on the inputs.
type ValidationResponse[T any] struct {
	Valid bool `json:"valid"`
	Data  T    `json:"data"`
}

// AuthHandler serves the login and signup validation endpoints.
type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(h Handler, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     h,
		authService: authService,
	}
}

// ValidateLogin returns the normalized login payload.
func (h *AuthHandler) ValidateLogin(c echo.Context, in validation.Record) (*ValidationResponse[*validation.LoginInput], error) {
	login, err := h.authService.AcceptLogin(c.Request().Context(), in)
	if err != nil {
		return nil, err
	}

	return &ValidationResponse[*validation.LoginInput]{Valid: true, Data: login}, nil
}

// ValidateSignup returns the normalized signup payload.
func (h *AuthHandler) ValidateSignup(c echo.Context, in validation.Record) (*ValidationResponse[*validation.SignupInput], error) {
	signup, err := h.authService.AcceptSignup(c.Request().Context(), in)
	if err != nil {
		return nil, err
	}

	return &ValidationResponse[*validation.SignupInput]{Valid: true, Data: signup}, nil
}

// Accept only reports that the payload passed; the body is not echoed.
func (h *AuthHandler) Accept(c echo.Context, in validation.Record) error {
	return nil
}
