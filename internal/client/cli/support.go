package cli

import "context"

// Support shows the static support-information screen.
func (a *App) Support(ctx context.Context) error {
	a.navigate(screenSupport)
	renderSupport(a.out)
	return nil
}
