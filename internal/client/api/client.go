package api

import (
	"context"

	"github.com/cmdcable/portal/internal/client/models"
)

// Client defines the backend operations the portal consumes.
//
// Contract:
//   - Authenticate: exchange phone + password for a bearer credential.
//   - CurrentSubscriber: fetch the authenticated subscriber's profile.
//   - Billings / Payments: history reads, optionally narrowed to a year
//     (year == 0 means no filter).
//   - PayableBillings: open/overdue billing periods, most urgent first.
//   - SubmitPayment: create a manual payment (multipart, optional receipt).
//
// All reads are safe to retry at the call site; SubmitPayment is not.
// All methods must honor context cancellation/timeouts.
type Client interface {
	Authenticate(ctx context.Context, phone string, password string) (string, error)
	CurrentSubscriber(ctx context.Context, credential string) (*models.Subscriber, error)
	Billings(ctx context.Context, credential string, year int) ([]models.Billing, error)
	Payments(ctx context.Context, credential string, year int) ([]models.Payment, error)
	PayableBillings(ctx context.Context, credential string) ([]models.Billing, error)
	SubmitPayment(ctx context.Context, credential string, sub PaymentSubmission) (*models.Payment, error)
}

// PaymentSubmission carries everything the payment form collects. The
// receipt is optional and currently inert on the backend side.
type PaymentSubmission struct {
	SubscriberID  int64
	BillingID     int64
	FullName      string
	PlanName      string
	Amount        float64
	BillingPeriod string
	Method        models.PaymentMethod

	// GCash-specific.
	PayeeName      string
	GCashReference string

	// Bank-transfer-specific.
	BankName      string
	AccountName   string
	AccountNumber string

	// Optional receipt attachment.
	ReceiptName string
	Receipt     []byte
}
