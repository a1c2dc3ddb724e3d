// Package service contains the business logic.
//
// It sits behind the handler layer. Handlers pass it records that have
// already passed a schema; the service turns them into typed inputs for
// whatever consumes them next.
package service
