package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/auth-validation/internal/config"
	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/deppfellow/auth-validation/internal/service"
	"github.com/deppfellow/auth-validation/internal/validation"
)

func newAuthService(buf *bytes.Buffer) *service.AuthService {
	logger := zerolog.New(buf)
	s := server.New(&config.Config{Primary: config.Primary{Env: "test"}}, &logger)
	return service.NewServices(s).Auth
}

func TestAcceptLogin(t *testing.T) {
	var buf bytes.Buffer
	auth := newAuthService(&buf)

	in, err := auth.AcceptLogin(context.Background(), validation.Record{"email": "a@b.co", "password": "abcdefg"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", in.Email)
	assert.Equal(t, "abcdefg", in.Password)

	assert.Contains(t, buf.String(), "login payload accepted")
	assert.NotContains(t, buf.String(), "abcdefg")
}

func TestAcceptSignupUsesContextLogger(t *testing.T) {
	var serverBuf, requestBuf bytes.Buffer
	auth := newAuthService(&serverBuf)

	requestLogger := zerolog.New(&requestBuf).With().Str("request_id", "req-9").Logger()
	ctx := requestLogger.WithContext(context.Background())

	rec := validation.Validate(validation.SignupSchema, validation.Record{
		"username": "alice", "email": "alice@example.com", "phone": "9876543210",
		"password": "s3cret-pass", "college": "IIT Bombay", "degree": "B.Tech",
		"branch": "CSE", "percentage": 87.5, "yearOfCompletion": 2024, "city": "Mumbai",
	})
	require.True(t, rec.Valid(), rec.Err())

	in, err := auth.AcceptSignup(ctx, rec.Value())
	require.NoError(t, err)
	assert.Equal(t, 2024.0, in.YearOfCompletion)

	assert.Empty(t, serverBuf.String())
	assert.Contains(t, requestBuf.String(), `"request_id":"req-9"`)
	assert.Contains(t, requestBuf.String(), "signup payload accepted")
}

func TestAcceptRejectsUndecodableRecord(t *testing.T) {
	auth := newAuthService(&bytes.Buffer{})

	_, err := auth.AcceptSignup(context.Background(), validation.Record{"percentage": "high"})
	assert.ErrorContains(t, err, "accept signup")
}
