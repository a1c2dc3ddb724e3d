// Package errs defines the error shapes returned to API clients.
//
// HTTPError is the single response envelope; FieldError carries the
// per-field messages produced by the validation package so a form can
// show every problem next to its input.
package errs
