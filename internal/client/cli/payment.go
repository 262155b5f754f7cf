package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmdcable/portal/internal/client/api"
	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/client/services"
	"github.com/cmdcable/portal/internal/client/viewstate"
	"github.com/cmdcable/portal/internal/common"
	"github.com/cmdcable/portal/internal/format"
)

// Payee and bank constants shown on the payment screen. The receipt is
// optional and currently inert on the backend side.
const (
	gcashBillerName  = "CMD Cable Vision Inc"
	bankName         = "BPI"
	bankAccountName  = brandName
	bankAccountNo    = "1234 5678 90"
	fallbackGCashRef = "09123456789"

	maxReceiptBytes = 5 << 20
)

// PaymentScreen drives the manual payment flow: subscriber load, payable
// periods load, period/method selection, optional receipt, submission.
// Selections survive a failed submission so the user can retry without
// re-entering everything.
type PaymentScreen struct {
	portal services.PortalService

	me      *viewstate.Controller[*models.Subscriber]
	periods *viewstate.Controller[[]models.Billing]

	// retained form state
	SelectedBillingID int64
	Method            models.PaymentMethod
}

func NewPaymentScreen(portal services.PortalService) *PaymentScreen {
	return &PaymentScreen{
		portal:  portal,
		me:      viewstate.New[*models.Subscriber](),
		periods: viewstate.New[[]models.Billing](),
		Method:  models.MethodGCash,
	}
}

func (s *PaymentScreen) Reset() {
	s.me.Reset()
	s.periods.Reset()
	s.SelectedBillingID = 0
	s.Method = models.MethodGCash
}

// readReceipt validates and loads an optional receipt file. Only PNG, JPG,
// and PDF up to 5 MiB are accepted.
func readReceipt(path string) (string, []byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".pdf":
	default:
		return "", nil, &services.ValidationError{Msg: "Only PNG, JPG, or PDF files are allowed."}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}
	if info.Size() > maxReceiptBytes {
		return "", nil, &services.ValidationError{Msg: "File is larger than 5MB."}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), data, nil
}

// Pay runs the payment screen.
func (a *App) Pay(ctx context.Context) error {
	if !a.auth.LoggedIn(ctx) {
		fmt.Fprintln(a.out, msgNotLoggedIn)
		return common.ErrNoCredential
	}
	a.navigate(screenPayment)
	s := a.payment

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Complete Your Payment")
	fmt.Fprintln(a.out, "Review your details before submitting payment.")
	fmt.Fprintln(a.out, "Checking your session...")

	<-s.me.Load(ctx, func(ctx context.Context) (*models.Subscriber, error) {
		return s.portal.CurrentSubscriber(ctx)
	})
	meSnap := s.me.Snapshot()
	if meSnap.Phase == viewstate.Failed {
		if errors.Is(meSnap.Err, common.ErrUnauthorized) {
			_ = a.auth.Logout(ctx)
			fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
			return meSnap.Err
		}
		fmt.Fprintf(a.out, "Error: %s\n", meSnap.Err)
		return meSnap.Err
	}
	sub := meSnap.Data

	// Billable periods load runs after the subscriber load completes.
	<-s.periods.Load(ctx, func(ctx context.Context) ([]models.Billing, error) {
		return s.portal.PayableBillings(ctx)
	})
	pSnap := s.periods.Snapshot()
	if pSnap.Phase == viewstate.Failed {
		fmt.Fprintf(a.out, "Error: %s\n", pSnap.Err)
		return pSnap.Err
	}
	periods := pSnap.Data

	var selected *models.Billing
	if len(periods) == 0 {
		fmt.Fprintln(a.out, "No open/overdue billings.")
	} else {
		// Most urgent period first; a previous selection stays the default.
		def := 0
		for i, b := range periods {
			if b.ID == s.SelectedBillingID {
				def = i
				break
			}
		}
		labels := make([]string, len(periods))
		for i, b := range periods {
			labels[i] = fmt.Sprintf("%s  %s", b.PeriodLabel(), format.Currency(b.Amount))
		}
		idx, err := SelectOption(a.reader, "Billing Period", labels, def, a.out)
		if err != nil {
			return err
		}
		selected = &periods[idx]
		s.SelectedBillingID = selected.ID
	}

	amount := sub.MonthlyRate
	periodLabel := "—"
	var billingID int64
	if selected != nil {
		amount = selected.Amount
		periodLabel = selected.PeriodLabel()
		billingID = selected.ID
	}

	fmt.Fprintf(a.out, "\nFull Name         %s\n", sub.DisplayName())
	fmt.Fprintf(a.out, "Plan Name         %s\n", sub.Plan)
	fmt.Fprintf(a.out, "Total Amount Due  %s\n\n", format.Currency(amount))

	methods := []models.PaymentMethod{models.MethodGCash, models.MethodBankTransfer, models.MethodCash}
	methodLabels := []string{"GCash", "Bank Transfer", "Cash"}
	defMethod := 0
	for i, m := range methods {
		if m == s.Method {
			defMethod = i
			break
		}
	}
	idx, err := SelectOption(a.reader, "Payment Method", methodLabels, defMethod, a.out)
	if err != nil {
		return err
	}
	method := methods[idx]
	s.Method = method

	gcashReference := sub.SerialNumber
	if gcashReference == "" {
		gcashReference = fallbackGCashRef
	}
	switch method {
	case models.MethodGCash:
		fmt.Fprintf(a.out, "\nPay to %s, reference %s\n", gcashBillerName, gcashReference)
	case models.MethodBankTransfer:
		fmt.Fprintf(a.out, "\nBank %s, account %s, %s\n", bankName, bankAccountName, bankAccountNo)
	}

	receiptPath, err := getSimpleText(a.reader, "Receipt file (optional, Enter to skip)", a.out)
	if err != nil {
		return err
	}
	var receiptName string
	var receipt []byte
	if receiptPath != "" {
		receiptName, receipt, err = readReceipt(receiptPath)
		if err != nil {
			fmt.Fprintf(a.out, "%s\n", err)
			return err
		}
	}

	confirm, err := getSimpleText(a.reader, "Submit payment? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		fmt.Fprintln(a.out, "Payment cancelled.")
		return nil
	}

	submission := api.PaymentSubmission{
		SubscriberID:  sub.ID,
		BillingID:     billingID,
		FullName:      sub.DisplayName(),
		PlanName:      sub.Plan,
		Amount:        amount,
		BillingPeriod: periodLabel,
		Method:        method,
		ReceiptName:   receiptName,
		Receipt:       receipt,
	}
	switch method {
	case models.MethodGCash:
		submission.PayeeName = gcashBillerName
		submission.GCashReference = gcashReference
	case models.MethodBankTransfer:
		submission.BankName = bankName
		submission.AccountName = bankAccountName
		submission.AccountNumber = bankAccountNo
	}

	created, err := s.portal.SubmitPayment(ctx, submission)
	if err != nil {
		// Selections are retained; the user can run pay again to retry.
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(a.out, ve.Msg)
		} else {
			fmt.Fprintf(a.out, "Submission failed: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Payment submitted for verification. Thank you! (status: %s)\n",
		format.TitleCase(created.Status))
	return nil
}
