// Package common defines shared constants and sentinel errors used across
// the portal client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrNoCredential means no stored credential exists; protected
	// operations must fail with it before any network call is attempted.
	ErrNoCredential = errors.New("no credential")

	// ErrUnauthorized means the backend rejected the presented credential
	// or the login credentials were invalid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
)
