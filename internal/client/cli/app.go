package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/cmdcable/portal/internal/client/api"
	"github.com/cmdcable/portal/internal/client/config"
	"github.com/cmdcable/portal/internal/client/repositories/session"
	"github.com/cmdcable/portal/internal/client/services"
	"github.com/cmdcable/portal/internal/logging"

	_ "modernc.org/sqlite"
)

// Screen names, used to reset a screen's transient state when the user
// navigates elsewhere.
const (
	screenDashboard = "dashboard"
	screenBilling   = "billing"
	screenPayment   = "payment"
	screenSupport   = "support"
)

// App wires the portal CLI together: config, session store, API client,
// services, and the per-screen controllers.
type App struct {
	config *config.Config
	log    logging.Logger
	auth   services.AuthService
	portal services.PortalService

	dashboard *DashboardScreen
	billing   *BillingScreen
	payment   *PaymentScreen

	reader  *bufio.Reader
	out     io.Writer
	current string
	closer  io.Closer
}

// NewApp builds the application. If local session storage cannot be
// opened, the app falls back to an in-memory session for the life of the
// process instead of failing.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	var sessions session.Repository
	var closer io.Closer
	repo, err := session.Open(ctx, c.SessionDB, log)
	if err != nil {
		log.Warn(ctx, "session storage unavailable, using in-memory session", "error", err)
		sessions = session.NewMemoryRepository()
	} else {
		sessions = repo
		closer = repo
	}

	apiClient := api.NewRESTClient(c.APIBaseURL, c.HTTPTimeout, log)
	auth := services.NewAuthService(apiClient, sessions, log)
	portal := services.NewPortalService(apiClient, sessions, log)

	return &App{
		config:    c,
		log:       log,
		auth:      auth,
		portal:    portal,
		dashboard: NewDashboardScreen(portal),
		billing:   NewBillingScreen(portal),
		payment:   NewPaymentScreen(portal),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		closer:    closer,
	}, nil
}

// navigate records the active screen and resets the state of the screen
// being left. Filter and form state is transient per visit elsewhere.
func (a *App) navigate(screen string) {
	if a.current == screen {
		return
	}
	switch a.current {
	case screenDashboard:
		a.dashboard.Reset()
	case screenBilling:
		a.billing.Reset()
	case screenPayment:
		a.payment.Reset()
	}
	a.current = screen
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.LoggedIn(ctx)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			_ = a.closer.Close()
		}
	}()

	statusFn := func() string {
		if a.isLoggedIn(ctx) {
			return "logged in"
		}
		return "logged out"
	}
	runREPL(ctx, a, statusFn, a.reader)
}
