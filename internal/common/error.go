// Package common defines shared constants and sentinel errors used across
// Campusfind components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors raised before any network call is made.
	ErrMissingCredentials = errors.New("credentials required")
	ErrMissingFields      = errors.New("required fields missing")
	ErrMissingMessage     = errors.New("message text required")

	// Auth flow errors.
	ErrNoPendingLogin = errors.New("no pending login")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Generic service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorNotFound     = errors.New("not found")
	ErrorInternal     = errors.New("internal error")
)
