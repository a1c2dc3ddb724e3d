// Package validation contains the logic for validating
// authentication request data.
//
// Login and signup payloads arrive as untyped records decoded from a
// request body. Each schema is a static table of field rules; Validate
// walks the table in declaration order and either returns a normalized
// record (trimmed strings, unchanged numbers) or every field-level error
// found, so the client can show all problems in one pass.
//
// Schemas are built once at package initialization and never mutated
// afterwards, so they are safe for concurrent use without locking.
package validation
