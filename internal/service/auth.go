package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/deppfellow/auth-validation/internal/validation"
	"github.com/rs/zerolog"
)

// AuthService accepts login and signup payloads.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		server: s,
	}
}

// AcceptLogin decodes a login record that passed LoginSchema.
func (s *AuthService) AcceptLogin(ctx context.Context, rec validation.Record) (*validation.LoginInput, error) {
	in, err := validation.DecodeLogin(rec)
	if err != nil {
		return nil, fmt.Errorf("accept login: %w", err)
	}

	s.logger(ctx).Debug().
		Str("schema", validation.LoginSchema.Name()).
		Msg("login payload accepted")

	return &in, nil
}

// AcceptSignup decodes a signup record that passed SignupSchema.
func (s *AuthService) AcceptSignup(ctx context.Context, rec validation.Record) (*validation.SignupInput, error) {
	in, err := validation.DecodeSignup(rec)
	if err != nil {
		return nil, fmt.Errorf("accept signup: %w", err)
	}

	s.logger(ctx).Debug().
		Str("schema", validation.SignupSchema.Name()).
		Float64("year_of_completion", in.YearOfCompletion).
		Msg("signup payload accepted")

	return &in, nil
}

// logger prefers the request-scoped logger carried by ctx.
func (s *AuthService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}
