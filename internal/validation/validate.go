package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/auth-validation/internal/errs"
)

// Record is an untyped key-value payload, as decoded from a JSON body.
type Record map[string]any

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered list of failures from one validation call, in
// schema declaration order. It satisfies error.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed.
func (e Errors) Has(field string) bool {
	_, ok := e.Get(field)
	return ok
}

// Get returns the message reported for field.
func (e Errors) Get(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Fields returns the failing field names in order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// FieldErrors converts the failures into the API error shape.
func (e Errors) FieldErrors() []errs.FieldError {
	out := make([]errs.FieldError, 0, len(e))
	for _, fe := range e {
		out = append(out, errs.FieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}

// AsErrors extracts Errors from err, if it carries them.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Result is either Valid with a normalized record or Invalid with at
// least one field error.
type Result struct {
	value  Record
	errors Errors
}

func (r Result) Valid() bool {
	return len(r.errors) == 0
}

// Value returns the normalized record; nil when invalid.
func (r Result) Value() Record {
	return r.value
}

func (r Result) Errors() Errors {
	return r.errors
}

// Err returns the failures as an error, or nil when valid.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.errors
}

// Validate applies every rule of schema to input. Each field reports at
// most one error; all failing fields are reported together. Keys not in
// the schema are ignored. The returned record is freshly allocated and
// holds only schema keys.
func Validate(schema *Schema, input Record) Result {
	if schema == nil {
		panic("validation: nil schema")
	}

	out := make(Record, len(schema.fields))
	var failures Errors

	for _, rule := range schema.fields {
		raw, present := input[rule.Name]

		value, msg, ok := rule.Check(raw, present)
		if !ok {
			failures = append(failures, FieldError{Field: rule.Name, Message: msg})
			continue
		}
		if value != nil {
			out[rule.Name] = value
		}
	}

	if len(failures) > 0 {
		return Result{errors: failures}
	}
	return Result{value: out}
}

// ValidateNamed validates input against the schema registered as name.
// An unknown name panics, see MustLookup.
func ValidateNamed(name string, input Record) Result {
	return Validate(MustLookup(name), input)
}
