package middleware

import (
	"github.com/deppfellow/auth-validation/internal/server"
)

// Middlewares groups every middleware component used by the HTTP server so
// router setup receives one value.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, body
	// limit and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger to each request.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
