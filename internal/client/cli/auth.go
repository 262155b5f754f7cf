package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmdcable/portal/internal/client/services"
	"github.com/cmdcable/portal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const msgNotLoggedIn = "You're not logged in. Please log in to continue."

// Login prompts for phone number and password and authenticates. On
// success the credential is persisted and the dashboard is shown.
//
// Client-side validation failures and server rejections both surface as a
// single user-visible line; nothing is retried automatically.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number (e.g. 09123456789)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, phone, string(password)); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			fmt.Fprintln(a.out, ve.Msg)
		case errors.Is(err, common.ErrUnauthorized):
			fmt.Fprintln(a.out, "Invalid phone number or password.")
		case errors.Is(err, common.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable. Please try again later.")
		default:
			fmt.Fprintf(a.out, "Login failed: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome to %s!\n", brandName)
	return a.Dashboard(ctx)
}

// Logout clears the stored credential and any loaded screen state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.dashboard.Reset()
	a.billing.Reset()
	a.payment.Reset()
	a.current = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
