// Package logging is the job tracker's structured logger. The REST client
// traces every request through it at debug level, and the session and the
// application list report logins, expiries and record changes at info and
// warn. Output goes to stderr so it never mixes with the REPL on stdout.
package logging

import "context"

// Logger takes a message plus alternating keys and values:
//
//	log.Debug(ctx, "request done", "method", "GET", "path", "/applications/", "status", 200)
//
// The context is handed on to the handler (slog's *Context methods).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record, e.g. a request id.
	With(args ...any) Logger
}
