package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoInput       = errors.New("input unavailable")
	ErrNoOutput      = errors.New("output unavailable")
	ErrInvalidConfig = errors.New("invalid configuration")
)
