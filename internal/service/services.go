package service

import (
	"github.com/deppfellow/auth-validation/internal/server"
)

// Services groups every service so handlers receive one value.
type Services struct {
	Auth *AuthService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Auth: NewAuthService(s),
	}
}
