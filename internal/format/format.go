// Package format contains pure presentation helpers: peso amounts, long-form
// dates, billing-status canonicalization, and payment-status tones.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tone is a semantic color category used for status display only.
type Tone string

const (
	ToneGreen Tone = "green"
	ToneRed   Tone = "red"
	ToneGray  Tone = "gray"
)

// Canonical billing statuses produced by NormalizeBillingStatus.
const (
	BillingUnpaid  = "unpaid"
	BillingOverdue = "overdue"
	BillingPaid    = "paid"
)

var pesoPrinter = message.NewPrinter(language.MustParse("en-PH"))

// Currency renders an amount as a Philippine-peso string with digit grouping
// and exactly two decimals, e.g. Currency(2299) == "₱2,299.00".
func Currency(amount float64) string {
	return pesoPrinter.Sprintf("₱%v", number.Decimal(amount, number.Scale(2)))
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses the date shapes the backend emits (RFC3339 or plain
// YYYY-MM-DD). The second return reports whether parsing succeeded.
func ParseDate(iso string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LongDate renders an ISO date as "November 30, 2025". Unparseable input is
// returned unchanged rather than hidden behind an error.
func LongDate(iso string) string {
	t, ok := ParseDate(iso)
	if !ok {
		return iso
	}
	return t.Format("January 2, 2006")
}

// RangeLabel renders a billing period as "start – end" in long-date form.
func RangeLabel(startISO, endISO string) string {
	return LongDate(startISO) + " – " + LongDate(endISO)
}

// NormalizeBillingStatus maps the backend's wider status vocabulary down to
// exactly one of {unpaid, overdue, paid}. Unknown values default to "paid";
// that is the backend contract's stated default, not an omission.
func NormalizeBillingStatus(s string) string {
	switch strings.ToLower(s) {
	case "open", "unpaid":
		return BillingUnpaid
	case "overdue":
		return BillingOverdue
	case "closed", "paid":
		return BillingPaid
	default:
		return BillingPaid
	}
}

// PaymentTone maps a backend payment status to its display tone.
func PaymentTone(status string) Tone {
	switch strings.ToLower(status) {
	case "confirmed":
		return ToneGreen
	case "failed":
		return ToneRed
	case "processing":
		return ToneGray
	default:
		return ToneGray
	}
}

// TitleCase upper-cases the first letter of a status word and lower-cases
// the rest, for display.
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
