package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/auth-validation/internal/config"
	"github.com/deppfellow/auth-validation/internal/handler"
	"github.com/deppfellow/auth-validation/internal/middleware"
	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/deppfellow/auth-validation/internal/validation"
)

func newHandler(buf *bytes.Buffer) handler.Handler {
	logger := zerolog.New(buf)
	return handler.NewHandler(server.New(&config.Config{Primary: config.Primary{Env: "test"}}, &logger))
}

func newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func echoEmail(c echo.Context, in validation.Record) (map[string]any, error) {
	return map[string]any{"email": in["email"]}, nil
}

func TestHandleLogsThroughServerLoggerWithoutEnhancer(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf)

	c, rec := newContext(`{"email":" a@b.co ","password":"abcdefg"}`)
	err := handler.Handle(h, validation.LoginSchema, echoEmail, http.StatusOK)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"a@b.co"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "handling request")
	assert.Contains(t, buf.String(), `"schema":"login"`)
}

func TestHandlePrefersRequestLogger(t *testing.T) {
	var serverBuf, requestBuf bytes.Buffer
	h := newHandler(&serverBuf)

	c, _ := newContext(`{"email":"a@b.co","password":"abcdefg"}`)
	requestLogger := zerolog.New(&requestBuf).With().Str("request_id", "req-3").Logger()
	c.Set(middleware.LoggerKey, &requestLogger)

	require.NoError(t, handler.Handle(h, validation.LoginSchema, echoEmail, http.StatusOK)(c))

	assert.Empty(t, serverBuf.String())
	assert.Contains(t, requestBuf.String(), `"request_id":"req-3"`)
}

func TestHandleNoContentReturnsValidationError(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf)

	called := false
	accept := func(c echo.Context, in validation.Record) error {
		called = true
		return nil
	}

	c, _ := newContext(`{"email":"nope"}`)
	err := handler.HandleNoContent(h, validation.LoginSchema, accept, http.StatusNoContent)(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, buf.String(), "request validation failed")
}
