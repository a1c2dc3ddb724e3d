package middleware

import (
	"context"

	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the Echo context key of the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer enriches each request with a logger carrying
// request_id, method, path and ip.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext stores the request logger in Echo context and, through
// zerolog's context helpers, in the request's context.Context so code that
// only sees a context can log with the same fields.
//
// Must run after RequestID.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context. If
// EnhanceContext did not run it returns fallback, or a no-op logger when
// fallback is nil.
func GetLogger(c echo.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	if fallback != nil {
		return fallback
	}

	logger := zerolog.Nop()
	return &logger
}

// LoggerFromContext returns the logger stored by EnhanceContext in ctx.
// zerolog returns its disabled logger when none is present.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
