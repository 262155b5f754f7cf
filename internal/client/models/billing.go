package models

import (
	"time"

	"github.com/cmdcable/portal/internal/format"
)

// Billing is one billing-period record, with any payments the backend has
// already associated with it embedded.
type Billing struct {
	ID        int64     `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	DueDate   string    `json:"due_date"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Payments  []Payment `json:"payments"`
}

// PeriodLabel renders the billing period as a human-readable date range.
func (b Billing) PeriodLabel() string {
	return format.RangeLabel(b.StartDate, b.EndDate)
}

// DueTime parses the due date for ordering. Records with unparseable due
// dates sort as the zero time, i.e. least urgent.
func (b Billing) DueTime() time.Time {
	t, _ := format.ParseDate(b.DueDate)
	return t
}
