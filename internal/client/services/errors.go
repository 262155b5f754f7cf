// Package services contains the application services of the portal client:
// authentication/session lifecycle and the billing-portal reads and payment
// submission. Services sit between the CLI screens and the API client and
// are the only layer that touches the session store.
package services

// ValidationError is a client-side input rejection. It always blocks the
// operation before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
