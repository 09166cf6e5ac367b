// Package errors provides structured error handling for the lidnd API.
//
// Errors carry a Code that maps onto an HTTP status, an operator-facing
// message, an optional wrapped cause, and free-form metadata. Handlers
// render them with WriteHTTP; everything below the handler layer creates
// or wraps errors with the constructor helpers:
//
//	if encounter == nil {
//		return nil, errors.NotFoundf("encounter %s not found", id)
//	}
//
// Config validation uses the ValidationBuilder to report every missing
// dependency at once rather than failing on the first.
package errors
