package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/tracker"
)

// Refresh reloads the application list from the backend.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.tracker.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Loaded %d application(s).\n", len(a.tracker.Items()))
	return nil
}

func (a *App) List(ctx context.Context) error {
	fmt.Fprintln(a.out, renderList(a.tracker.Items()))
	return nil
}

// Show fetches one application and prints all of its fields.
func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	rec, err := a.tracker.Get(ctx, id)
	if err != nil {
		return notFound(err, id)
	}
	fmt.Fprintln(a.out, renderApplication(*rec))
	return nil
}

// Add asks for the form fields and creates an application.
func (a *App) Add(ctx context.Context) error {
	f, err := a.promptForm(nil)
	if err != nil {
		return err
	}
	rec, err := a.tracker.Submit(ctx, f, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Created application #%d (%s, %s)", rec.ID, rec.CompanyName, rec.Role)))
	return nil
}

// Edit asks for new values; blank answers keep the stored ones.
func (a *App) Edit(ctx context.Context, rawID string) error {
	existing, err := a.lookup(ctx, rawID)
	if err != nil {
		return err
	}
	f, err := a.promptForm(existing)
	if err != nil {
		return err
	}
	rec, err := a.tracker.Submit(ctx, f, existing)
	if err != nil {
		return notFound(err, existing.ID)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Updated application #%d", rec.ID)))
	return nil
}

// Delete removes an application after confirmation.
func (a *App) Delete(ctx context.Context, rawID string) error {
	existing, err := a.lookup(ctx, rawID)
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete application #%d (%s, %s)?", existing.ID, existing.CompanyName, existing.Role), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.tracker.Delete(ctx, existing.ID); err != nil {
		return notFound(err, existing.ID)
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Deleted application #%d", existing.ID)))
	return nil
}

// lookup resolves an id against the cached list first and the backend second.
func (a *App) lookup(ctx context.Context, rawID string) (*models.Application, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	if rec, ok := a.tracker.Find(id); ok {
		return &rec, nil
	}
	rec, err := a.tracker.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return rec, nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("application #%d: %w", id, err)
	}
	return err
}

// promptForm reads the application form. For an existing record each prompt
// shows the current value and a blank answer keeps it.
func (a *App) promptForm(existing *models.Application) (tracker.Form, error) {
	var cur tracker.Form
	if existing != nil {
		cur = tracker.FormFromApplication(*existing)
	}

	var f tracker.Form
	fields := []struct {
		label   string
		current string
		dst     *string
	}{
		{"Company name", cur.CompanyName, &f.CompanyName},
		{"Role", cur.Role, &f.Role},
		{"Status (" + statusChoices() + ")", cur.Status, &f.Status},
		{"Company size", cur.CompanySize, &f.CompanySize},
		{"Job URL", cur.JobURL, &f.JobURL},
		{"Date applied (YYYY-MM-DD)", cur.DateApplied, &f.DateApplied},
		{"Location", cur.Location, &f.Location},
		{"Recruiter", cur.Recruiter, &f.Recruiter},
	}

	for _, fld := range fields {
		prompt := fld.label
		if fld.current != "" {
			prompt += " [" + fld.current + "]"
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return tracker.Form{}, err
		}
		*fld.dst = v
	}

	notesPrompt := "Notes"
	if cur.Notes != "" {
		notesPrompt += " (blank keeps the current notes)"
	}
	notes, err := getMultiline(a.reader, notesPrompt, a.out)
	if err != nil {
		return tracker.Form{}, err
	}
	f.Notes = notes

	return f, nil
}
