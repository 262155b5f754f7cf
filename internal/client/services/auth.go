package services

import (
	"context"
	"strings"

	"github.com/cmdcable/portal/internal/client/api"
	"github.com/cmdcable/portal/internal/client/repositories/session"
	"github.com/cmdcable/portal/internal/common"
	"github.com/cmdcable/portal/internal/logging"
)

// AuthService manages the credential lifecycle.
//
// Contract:
//   - Login: validate inputs, authenticate against the backend, persist
//     the returned credential.
//   - Logout: drop the stored credential.
//   - Credential: return the stored credential or common.ErrNoCredential.
//   - LoggedIn: report whether a credential is stored.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, phone string, password string) error
	Logout(ctx context.Context) error
	Credential(ctx context.Context) (string, error)
	LoggedIn(ctx context.Context) bool
}

type authService struct {
	client   api.Client
	sessions session.Repository
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sessions session.Repository, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log}
}

// digitCount counts decimal digits in s, ignoring separators and spacing.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Login validates the form inputs, then authenticates. The phone number is
// not normalized beyond the digit check; it is sent as entered.
func (a *authService) Login(ctx context.Context, phone string, password string) error {
	if digitCount(phone) < 8 {
		return &ValidationError{Msg: "Please enter a valid phone number."}
	}
	if len(password) < 6 {
		return &ValidationError{Msg: "Password must be at least 6 characters."}
	}

	credential, err := a.client.Authenticate(ctx, strings.TrimSpace(phone), password)
	if err != nil {
		return err
	}

	if err := a.sessions.Save(ctx, credential); err != nil {
		// Best-effort storage: the login itself succeeded.
		a.log.Warn(ctx, "credential not persisted", "error", err)
	}
	a.log.Info(ctx, "login successful")
	return nil
}

// Logout clears the stored credential.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// Credential returns the stored credential, failing with
// common.ErrNoCredential when absent so callers can gate work before any
// network call.
func (a *authService) Credential(ctx context.Context) (string, error) {
	credential, err := a.sessions.Get(ctx)
	if err != nil || credential == "" {
		return "", common.ErrNoCredential
	}
	return credential, nil
}

// LoggedIn reports whether a credential is stored.
func (a *authService) LoggedIn(ctx context.Context) bool {
	_, err := a.Credential(ctx)
	return err == nil
}
