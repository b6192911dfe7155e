package cli

import (
	"context"
	"fmt"
)

// Register prompts for email, name and password, creates the account and
// logs in with it.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, email, password, name); err != nil {
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render("Account created, logged in as "+a.getStatus()))
	return a.Refresh(ctx)
}

// Login prompts for credentials, starts a session and loads the list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render("Logged in as "+a.getStatus()))
	return a.Refresh(ctx)
}

// Logout forgets the session and the cached list.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.tracker.Reset()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.Snapshot()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintln(a.out, renderUser(st.User))
	return nil
}
