package handler

import (
	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/deppfellow/auth-validation/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one value.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Auth:   NewAuthHandler(NewHandler(s), services.Auth),
	}
}
