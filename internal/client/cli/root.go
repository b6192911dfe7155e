package cli

import (
	"context"
	"fmt"
)

// Root prepares the session and runs the REPL until the user exits.
//
// Start-up: check that the backend answers, restore the saved token, load
// the user for it and, when that succeeds, load the application list.
// Failures are reported and the REPL starts regardless.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("Job tracker CLI (type 'help' for commands)"))

	if err := a.api.Ping(ctx); err != nil {
		fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf("Backend at %s is not reachable: %v", a.config.APIBaseURL, err)))
	}

	a.startSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) startSession(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "restoring session", "error", err)
		return
	}
	if a.session.Token() == "" {
		return
	}

	if err := a.session.LoadUser(ctx); err != nil {
		a.handleError(ctx, err)
		return
	}
	if !a.isLoggedIn() {
		return
	}

	fmt.Fprintln(a.out, "Welcome back, "+a.getStatus())
	a.handleError(ctx, a.Refresh(ctx))
}
