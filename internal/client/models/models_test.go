package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriber_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		sub  Subscriber
		want string
	}{
		{"prefers full name", Subscriber{FullName: "Princess Connie Tamayao", FirstName: "Princess", LastName: "Tamayao"}, "Princess Connie Tamayao"},
		{"falls back to parts", Subscriber{FirstName: "Juan", LastName: "dela Cruz"}, "Juan dela Cruz"},
		{"single part", Subscriber{FirstName: "Juan"}, "Juan"},
		{"empty", Subscriber{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.DisplayName())
		})
	}
}

func TestBilling_DueTime(t *testing.T) {
	b := Billing{DueDate: "2025-11-30"}
	assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), b.DueTime())

	assert.True(t, Billing{DueDate: "not-a-date"}.DueTime().IsZero())
	assert.True(t, Billing{}.DueTime().IsZero())
}

func TestBilling_PeriodLabel(t *testing.T) {
	b := Billing{StartDate: "2025-11-01", EndDate: "2025-11-30"}
	assert.Equal(t, "November 1, 2025 – November 30, 2025", b.PeriodLabel())
}
