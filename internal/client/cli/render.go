package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/format"
)

const brandName = "CMD UnliFiberMax"

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiGray  = "\x1b[90m"
	ansiReset = "\x1b[0m"
)

// badge wraps text in the ANSI color for its tone.
func badge(text string, tone format.Tone) string {
	switch tone {
	case format.ToneGreen:
		return ansiGreen + text + ansiReset
	case format.ToneRed:
		return ansiRed + text + ansiReset
	default:
		return ansiGray + text + ansiReset
	}
}

// billingTone maps a canonical billing status to its display tone.
func billingTone(canonical string) format.Tone {
	switch canonical {
	case format.BillingPaid:
		return format.ToneGreen
	case format.BillingOverdue:
		return format.ToneRed
	default:
		return format.ToneGray
	}
}

// segment is one option of a segmented control.
type segment struct {
	Label string
	Value string
}

// segmented renders a segmented control line with the active option
// bracketed.
func segmented(segments []segment, active string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Value == active {
			parts = append(parts, "["+s.Label+"]")
		} else {
			parts = append(parts, " "+s.Label+" ")
		}
	}
	return strings.Join(parts, " ")
}

func renderDashboard(w io.Writer, sub *models.Subscriber) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Amount Due")
	fmt.Fprintf(w, "  %s\n", format.Currency(sub.AmountDue))
	if sub.DueDate != "" {
		fmt.Fprintf(w, "  Due by %s\n", format.LongDate(sub.DueDate))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Current Plan")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Plan Name\t%s\n", sub.Plan)
	if sub.Speed != "" {
		fmt.Fprintf(tw, "  Speed\t%s\n", sub.Speed)
	}
	fmt.Fprintf(tw, "  Monthly Rate\t%s\n", format.Currency(sub.MonthlyRate))
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account Details")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Customer\t%s\n", sub.DisplayName())
	fmt.Fprintf(tw, "  Account Number\t%s\n", sub.SerialNumber)
	tw.Flush()
	fmt.Fprintln(w)
}

func renderBillingsTable(w io.Writer, bills []models.Billing) {
	if len(bills) == 0 {
		fmt.Fprintln(w, "No bills found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tDUE DATE\tAMOUNT\tSTATUS")
	for _, b := range bills {
		status := format.NormalizeBillingStatus(b.Status)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			b.PeriodLabel(),
			format.LongDate(b.DueDate),
			format.Currency(b.Amount),
			badge(format.TitleCase(status), billingTone(status)),
		)
	}
	tw.Flush()
}

func renderPaymentsTable(w io.Writer, payments []models.Payment) {
	if len(payments) == 0 {
		fmt.Fprintln(w, "No payments found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tAMOUNT\tMETHOD\tREFERENCE\tSTATUS")
	for _, p := range payments {
		reference := "—"
		if p.ReferenceNumber != nil && *p.ReferenceNumber != "" {
			reference = *p.ReferenceNumber
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			format.LongDate(p.PaymentDate),
			format.Currency(p.Amount),
			p.Method,
			reference,
			badge(format.TitleCase(p.Status), format.PaymentTone(p.Status)),
		)
	}
	tw.Flush()
}

func renderSupport(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Support Center")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "We're working hard to bring you a full-featured support portal.")
	fmt.Fprintln(w, "New features will be rolling out soon! Thank you.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Customer Hotline   0999 123 4567")
	fmt.Fprintln(w, "Email Support      support@cmdunlifibermax.com")
	fmt.Fprintln(w, "Operating Hours    Monday - Saturday, 8:00 AM - 6:00 PM")
	fmt.Fprintln(w)
}
