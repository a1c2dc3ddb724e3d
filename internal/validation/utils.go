package validation

import (
	"github.com/deppfellow/auth-validation/internal/errs"
	"github.com/labstack/echo/v4"
)

// InvalidBodyMessage is returned when the request body is not a JSON object.
const InvalidBodyMessage = "Invalid request body"

// BindRecord decodes the request body into an untyped Record.
//
// Only the body is bound. Path and query parameters never reach the
// schema. An empty body yields an empty record, so every required field
// is reported rather than a decode failure.
func BindRecord(c echo.Context) (Record, error) {
	input := Record{}

	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, &input); err != nil {
		return nil, errs.NewBadRequestError(InvalidBodyMessage, false, nil, nil, nil)
	}

	return input, nil
}

// BindAndValidate binds the request body and validates it against schema.
//
// Flow:
//  1. BindRecord decodes the JSON object.
//  2. Validate applies the schema.
//  3. On failure a 400 *errs.HTTPError carries every field error.
func BindAndValidate(c echo.Context, schema *Schema) (Record, error) {
	input, err := BindRecord(c)
	if err != nil {
		return nil, err
	}

	result := Validate(schema, input)
	if !result.Valid() {
		return nil, errs.NewValidationError(result.Errors().FieldErrors())
	}

	return result.Value(), nil
}
