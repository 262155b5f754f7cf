// Package models defines the client-side views of backend records. All of
// them are read-only snapshots: the backend owns the authoritative state
// and the client never mutates a record locally.
package models

import "strings"

// Subscriber is the authenticated customer's profile snapshot as returned
// by the session/me endpoint.
type Subscriber struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	Plan         string  `json:"plan"`
	MonthlyRate  float64 `json:"brate"`
	Speed        string  `json:"speed"`
	SerialNumber string  `json:"serial_number"`
	AmountDue    float64 `json:"amount_due"`
	DueDate      string  `json:"due_date"`
}

// DisplayName prefers the backend-computed full name and falls back to
// joining the name parts.
func (s Subscriber) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
