// Package services contains application services for the job tracker client.
// This file defines the session store: login, register, logout, loading the
// current user, and keeping the bearer token in durable storage.
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// AuthService defines the session operations used by the front end.
//
// Contract:
//   - Restore: load the persisted token at startup (no network I/O).
//   - Login: exchange credentials for a token, persist it, then load the user.
//   - Register: create the account, then log in with the same credentials.
//   - Logout: forget token and user, purge durable storage. Idempotent.
//   - LoadUser: fetch the current user; any failure logs the session out.
//   - ClearError: drop the last error message.
//
// Network actions reset the error first and always finish with
// IsLoading == false.
type AuthService interface {
	client.TokenSource

	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context) error
	LoadUser(ctx context.Context) error
	ClearError()

	Snapshot() SessionState
	IsAuthenticated() bool
}

// SessionState is a point-in-time copy of the session.
type SessionState struct {
	Token           string
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// Session is the concrete AuthService. One instance is built at the
// composition root and injected wherever the session is needed.
type Session struct {
	client client.Client
	store  TokenStore
	log    logging.Logger
	now    func() time.Time

	mu      sync.Mutex
	token   string
	user    *models.User
	loading bool
	err     string
}

// NewSession constructs a Session bound to the given API client and token
// store. Call Restore to pick up a token persisted by a previous run.
func NewSession(c client.Client, store TokenStore, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{client: c, store: store, log: log, now: time.Now}
}

var _ AuthService = (*Session)(nil)

// Restore loads the persisted token. A JWT whose exp is already in the past
// is purged instead of being restored.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	if token != "" && tokenExpired(token, s.now()) {
		s.log.Info(ctx, "stored token expired, discarding")
		if err := s.store.Clear(ctx); err != nil {
			return err
		}
		token = ""
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Login authenticates against the server, persists the token and loads the
// user. On failure the token is cleared and the error is both recorded in the
// state and returned.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return client.ValidationError("email and password are required")
	}

	s.begin()
	defer s.finish()

	return s.login(ctx, email, password)
}

func (s *Session) login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		s.dropToken(ctx)
		s.setError(err, "Login failed")
		return err
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.mu.Unlock()

	if err := s.store.Save(ctx, resp.AccessToken); err != nil {
		s.log.Warn(ctx, "token not persisted", "error", err)
	}

	if err := s.loadUser(ctx); err != nil {
		s.setError(err, "Login failed")
		return err
	}

	s.log.Info(ctx, "login succeeded", "email", email)
	return nil
}

// Register creates a new account and then logs in with the same
// credentials. A failed registration never attempts the login.
func (s *Session) Register(ctx context.Context, email, password, name string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return client.ValidationError("email and password are required")
	}

	s.begin()
	defer s.finish()

	req := models.RegisterRequest{Email: strings.TrimSpace(email), Password: password, Name: strings.TrimSpace(name)}
	if _, err := s.client.Register(ctx, req); err != nil {
		s.log.Warn(ctx, "registration failed", "email", email, "error", err)
		s.setError(err, "Registration failed")
		return err
	}

	return s.login(ctx, req.Email, password)
}

// Logout clears token, user and error, and purges durable storage.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	hadToken := s.token != ""
	s.token = ""
	s.user = nil
	s.err = ""
	s.mu.Unlock()

	if hadToken {
		s.log.Info(ctx, "logged out")
	}
	return s.store.Clear(ctx)
}

// LoadUser fetches the current user. Without a token it only resets the
// user and makes no request. Any failure is treated as an invalid session.
func (s *Session) LoadUser(ctx context.Context) error {
	if s.Token() == "" {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return nil
	}

	s.begin()
	defer s.finish()

	return s.loadUser(ctx)
}

func (s *Session) loadUser(ctx context.Context) error {
	if s.Token() == "" {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return nil
	}

	u, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "session invalid, logging out", "error", err)
		if lerr := s.Logout(ctx); lerr != nil {
			s.log.Error(ctx, "token purge failed", "error", lerr)
		}
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// ClearError resets the recorded error.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// PurgeToken forgets the token in memory and in durable storage. The REST
// client calls it when the backend answers 401.
func (s *Session) PurgeToken(ctx context.Context) {
	s.dropToken(ctx)
}

// IsAuthenticated reports whether a user is loaded for the current token.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// Snapshot returns a copy of the session.
func (s *Session) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SessionState{
		Token:           s.token,
		IsAuthenticated: s.user != nil && s.token != "",
		IsLoading:       s.loading,
		Error:           s.err,
	}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *Session) begin() {
	s.mu.Lock()
	s.err = ""
	s.loading = true
	s.mu.Unlock()
}

func (s *Session) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Session) dropToken(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "token purge failed", "error", err)
	}
}

func (s *Session) setError(err error, fallback string) {
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}
