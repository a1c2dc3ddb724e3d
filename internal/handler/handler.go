// Package handler is the first layer after the router.
//
// It binds request bodies, runs them through the validation schemas and
// calls the service layer. It is the interface between the HTTP request
// and the validation core.
package handler
