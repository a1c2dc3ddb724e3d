package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/auth-validation/internal/config"
	"github.com/deppfellow/auth-validation/internal/errs"
	"github.com/deppfellow/auth-validation/internal/middleware"
	"github.com/deppfellow/auth-validation/internal/server"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.DefaultServerConfig(),
		Observability: config.DefaultObservabilityConfig(),
	}
	logger := zerolog.New(buf)
	return server.New(cfg, &logger)
}

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, handler(c))
		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reused", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("oversized is replaced", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)
	})
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)
	enhancer := middleware.NewContextEnhancer(s)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/validate", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := middleware.RequestID()(enhancer.EnhanceContext()(func(c echo.Context) error {
		middleware.GetLogger(c, nil).Info().Msg("from echo")
		middleware.LoggerFromContext(c.Request().Context()).Info().Msg("from context")
		return nil
	}))
	require.NoError(t, handler(c))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, http.MethodPost, entry["method"])
	}
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	logger := middleware.GetLogger(c, nil)
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())

	fallback := zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel)
	assert.Same(t, &fallback, middleware.GetLogger(c, &fallback))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	global := middleware.NewGlobalMiddlewares(newTestServer(&buf))

	run := func(method string, err error) *httptest.ResponseRecorder {
		e := echo.New()
		rec := httptest.NewRecorder()
		global.GlobalErrorHandler(err, e.NewContext(httptest.NewRequest(method, "/", nil), rec))
		return rec
	}

	t.Run("validation error keeps field errors", func(t *testing.T) {
		rec := run(http.MethodPost, errs.NewValidationError([]errs.FieldError{
			{Field: "email", Message: "Invalid email address"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, errs.CodeValidationFailed, body.Code)
		assert.Equal(t, errs.MessageValidationFailed, body.Message)
		assert.Equal(t, []errs.FieldError{{Field: "email", Message: "Invalid email address"}}, body.Errors)
	})

	t.Run("echo not found", func(t *testing.T) {
		rec := run(http.MethodGet, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "NOT_FOUND", body.Code)
		assert.Equal(t, "Route not found", body.Message)
	})

	t.Run("echo error passes through", func(t *testing.T) {
		rec := run(http.MethodPost, echo.ErrStatusRequestEntityTooLarge)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", decodeError(t, rec).Code)
	})

	t.Run("unknown error is sanitized", func(t *testing.T) {
		buf.Reset()
		rec := run(http.MethodPost, errors.New("database password is hunter2"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("head has no body", func(t *testing.T) {
		rec := run(http.MethodHead, errs.NewValidationError(nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestGlobalErrorHandlerPrefersRequestLogger(t *testing.T) {
	var serverBuf, requestBuf bytes.Buffer
	global := middleware.NewGlobalMiddlewares(newTestServer(&serverBuf))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	requestLogger := zerolog.New(&requestBuf).With().Str("request_id", "req-7").Logger()
	c.Set(middleware.LoggerKey, &requestLogger)

	global.GlobalErrorHandler(errors.New("boom"), c)

	assert.Empty(t, serverBuf.String())
	assert.Contains(t, requestBuf.String(), `"request_id":"req-7"`)
	assert.Contains(t, requestBuf.String(), `"level":"error"`)
}
