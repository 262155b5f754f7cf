package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/client/services"
	"github.com/cmdcable/portal/internal/client/viewstate"
	"github.com/cmdcable/portal/internal/common"
)

// BillingTab selects which collection the billing-history screen shows.
type BillingTab string

const (
	TabBills    BillingTab = "bills"
	TabPayments BillingTab = "payments"
)

// BillingScreen is the tabbed billing and payment history with a year
// filter. Each tab has its own controller so a failed payments fetch never
// clobbers loaded bills, and vice versa.
type BillingScreen struct {
	portal services.PortalService

	Tab  BillingTab
	Year int

	bills    *viewstate.Controller[[]models.Billing]
	payments *viewstate.Controller[[]models.Payment]
}

func NewBillingScreen(portal services.PortalService) *BillingScreen {
	return &BillingScreen{
		portal:   portal,
		Tab:      TabBills,
		Year:     time.Now().Year(),
		bills:    viewstate.New[[]models.Billing](),
		payments: viewstate.New[[]models.Payment](),
	}
}

// LoadActive starts a fetch for the active tab with the current year
// filter.
func (s *BillingScreen) LoadActive(ctx context.Context) <-chan struct{} {
	year := s.Year
	if s.Tab == TabPayments {
		return s.payments.Load(ctx, func(ctx context.Context) ([]models.Payment, error) {
			return s.portal.Payments(ctx, year)
		})
	}
	return s.bills.Load(ctx, func(ctx context.Context) ([]models.Billing, error) {
		return s.portal.Billings(ctx, year)
	})
}

// Reset returns the screen to its initial state: bills tab, current year,
// nothing loaded.
func (s *BillingScreen) Reset() {
	s.Tab = TabBills
	s.Year = time.Now().Year()
	s.bills.Reset()
	s.payments.Reset()
}

// Bills shows the billing history on the bills tab.
func (a *App) Bills(ctx context.Context) error {
	a.billing.Tab = TabBills
	return a.showBillingHistory(ctx)
}

// Payments shows the billing history on the payments tab.
func (a *App) Payments(ctx context.Context) error {
	a.billing.Tab = TabPayments
	return a.showBillingHistory(ctx)
}

// Year changes the year filter and reloads the active tab.
func (a *App) Year(ctx context.Context, arg string) error {
	year, err := strconv.Atoi(arg)
	if err != nil || year < 2000 || year > 2100 {
		fmt.Fprintln(a.out, "Usage: year <yyyy>")
		return nil
	}
	a.billing.Year = year
	return a.showBillingHistory(ctx)
}

func (a *App) showBillingHistory(ctx context.Context) error {
	if !a.auth.LoggedIn(ctx) {
		fmt.Fprintln(a.out, msgNotLoggedIn)
		return common.ErrNoCredential
	}
	a.navigate(screenBilling)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Billing & Payment History")
	fmt.Fprintf(a.out, "%s   Year: %d\n\n",
		segmented([]segment{
			{Label: "Bills", Value: string(TabBills)},
			{Label: "Payments", Value: string(TabPayments)},
		}, string(a.billing.Tab)),
		a.billing.Year,
	)

	fmt.Fprintln(a.out, "Loading...")
	<-a.billing.LoadActive(ctx)

	if a.billing.Tab == TabPayments {
		snap := a.billing.payments.Snapshot()
		if snap.Phase == viewstate.Failed {
			fmt.Fprintf(a.out, "Error: %s\n", snap.Err)
			return snap.Err
		}
		renderPaymentsTable(a.out, snap.Data)
		return nil
	}

	snap := a.billing.bills.Snapshot()
	if snap.Phase == viewstate.Failed {
		fmt.Fprintf(a.out, "Error: %s\n", snap.Err)
		return snap.Err
	}
	renderBillingsTable(a.out, snap.Data)
	return nil
}
