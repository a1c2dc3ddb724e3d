package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/auth-validation/internal/errs"
	"github.com/deppfellow/auth-validation/internal/validation"
)

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindRecord(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		rec, err := validation.BindRecord(newContext(`{"email":"a@b.co","percentage":87.5}`))
		require.NoError(t, err)
		assert.Equal(t, validation.Record{"email": "a@b.co", "percentage": 87.5}, rec)
	})

	t.Run("empty body", func(t *testing.T) {
		rec, err := validation.BindRecord(newContext(""))
		require.NoError(t, err)
		assert.Empty(t, rec)
	})

	for name, body := range map[string]string{
		"array":     `[1,2]`,
		"malformed": `{"email":`,
		"scalar":    `"hello"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := validation.BindRecord(newContext(body))

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, "BAD_REQUEST", httpErr.Code)
			assert.Equal(t, validation.InvalidBodyMessage, httpErr.Message)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rec, err := validation.BindAndValidate(newContext(`{"email":" a@b.co","password":"abcdefg"}`), validation.LoginSchema)
		require.NoError(t, err)
		assert.Equal(t, validation.Record{"email": "a@b.co", "password": "abcdefg"}, rec)
	})

	t.Run("field errors become a validation error", func(t *testing.T) {
		_, err := validation.BindAndValidate(newContext(`{"email":"not-an-email"}`), validation.LoginSchema)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, errs.CodeValidationFailed, httpErr.Code)
		assert.Equal(t, errs.MessageValidationFailed, httpErr.Message)
		assert.Equal(t, []errs.FieldError{
			{Field: "email", Message: "Invalid email address"},
			{Field: "password", Message: "Password is required"},
		}, httpErr.Errors)
	})

	t.Run("empty body reports every required field", func(t *testing.T) {
		_, err := validation.BindAndValidate(newContext(""), validation.SignupSchema)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Len(t, httpErr.Errors, len(validation.SignupSchema.Fields()))
	})
}
