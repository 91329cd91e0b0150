// Package common defines shared sentinel errors used across the shopsync
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Backend API errors.
	ErrUnavailable = errors.New("backend unavailable")
	ErrServerError = errors.New("server error")
	ErrBadRequest  = errors.New("bad request")
)
