package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/config"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/client/storage"
	"github.com/dmitrijs2005/jobtracker/internal/client/tracker"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// preferences is the subset of storage.PreferencesStore the board needs.
type preferences interface {
	BoardColumns(ctx context.Context) ([]string, bool, error)
	SetBoardColumns(ctx context.Context, cols []string) error
	ResetBoardColumns(ctx context.Context) error
}

type App struct {
	config  *config.Config
	api     client.Client
	session services.AuthService
	tracker *tracker.Tracker
	prefs   preferences
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local state and builds the service graph. The REST client
// is created first; the session wraps it and is then plugged back in as its
// token source.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, os.Stderr)

	db, err := storage.Open(ctx, c.StatePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local state: %w", err)
	}

	api, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	session := services.NewSession(api, storage.NewTokenStore(db), log)
	api.SetTokenSource(session)

	return &App{
		config:  c,
		api:     api,
		session: session,
		tracker: tracker.New(api, log),
		prefs:   storage.NewPreferencesStore(db),
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the REPL and releases local resources when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "closing local state", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	st := a.session.Snapshot()
	if st.User == nil {
		return "guest"
	}
	return st.User.DisplayName()
}

// handleError reports a failed command. An expired session drops all local
// session state so the prompt falls back to the unauthenticated commands.
func (a *App) handleError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, client.ErrSessionExpired) {
		if lerr := a.session.Logout(ctx); lerr != nil {
			a.log.Error(ctx, "logout after expired session", "error", lerr)
		}
		a.tracker.Reset()
		fmt.Fprintln(a.out, errorStyle.Render("Session expired, please login again."))
		return
	}
	fmt.Fprintln(a.out, errorStyle.Render("Error: "+err.Error()))
}
