package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmdcable/portal/internal/client/models"
	"github.com/cmdcable/portal/internal/client/services"
	"github.com/cmdcable/portal/internal/client/viewstate"
	"github.com/cmdcable/portal/internal/common"
)

// DashboardScreen shows the subscriber's account snapshot: amount due,
// current plan, and account details.
type DashboardScreen struct {
	portal services.PortalService
	ctrl   *viewstate.Controller[*models.Subscriber]
}

func NewDashboardScreen(portal services.PortalService) *DashboardScreen {
	return &DashboardScreen{portal: portal, ctrl: viewstate.New[*models.Subscriber]()}
}

func (s *DashboardScreen) Load(ctx context.Context) <-chan struct{} {
	return s.ctrl.Load(ctx, func(ctx context.Context) (*models.Subscriber, error) {
		return s.portal.CurrentSubscriber(ctx)
	})
}

func (s *DashboardScreen) Snapshot() viewstate.Snapshot[*models.Subscriber] {
	return s.ctrl.Snapshot()
}

func (s *DashboardScreen) Reset() {
	s.ctrl.Reset()
}

// Dashboard loads and renders the dashboard screen. A credential rejection
// clears the session and routes back to login; a transient fetch failure
// surfaces as a screen error and keeps the session intact.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.auth.LoggedIn(ctx) {
		a.dashboard.ctrl.SetUnauthenticated()
		fmt.Fprintln(a.out, msgNotLoggedIn)
		return common.ErrNoCredential
	}
	a.navigate(screenDashboard)

	fmt.Fprintln(a.out, "Loading...")
	<-a.dashboard.Load(ctx)

	snap := a.dashboard.Snapshot()
	switch snap.Phase {
	case viewstate.Ready:
		renderDashboard(a.out, snap.Data)
		return nil
	case viewstate.Failed:
		if errors.Is(snap.Err, common.ErrUnauthorized) {
			_ = a.auth.Logout(ctx)
			a.dashboard.ctrl.SetUnauthenticated()
			fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
			return snap.Err
		}
		fmt.Fprintf(a.out, "Error: %s\n", snap.Err)
		return snap.Err
	default:
		return nil
	}
}
