// Package common defines shared constants and sentinel errors used across
// the accountd services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors. The weak-password message is deliberately composite:
	// the flow does not report which individual rule failed.
	ErrMissingField       = errors.New("all fields are required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must contain at least: 8 characters, 1 lowercase letter, 1 uppercase letter, 1 number, and 1 symbol")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Registration / login errors. ErrInvalidCredentials covers both an
	// unknown email and a wrong password so callers cannot enumerate accounts.
	ErrEmailAlreadyInUse  = errors.New("this email is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Deployment defect, distinct from any user-input rejection.
	ErrMissingConfig = errors.New("missing required configuration")

	// Token lifecycle errors.
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrMalformedToken = errors.New("malformed token")
)
