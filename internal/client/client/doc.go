// Package client contains the REST client for the job-tracker backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register/Login/CurrentUser, Ping, and CRUD over application records.
//  2. A concrete HTTP implementation (see HTTPClient) that builds JSON or
//     form-encoded requests, injects the bearer token read from a
//     TokenSource, bounds every call with a timeout, and normalises failed
//     responses into a single error taxonomy.
//
// # Error Handling
//
// Every non-success response becomes one of: ErrSessionExpired (401, after
// the token source was purged), ErrNotFound (404 on record-specific calls),
// or a *RequestError carrying the message parsed from the backend's "detail"
// payload (errors.Is(err, ErrRequestFailed) holds). Transport failures are
// reported as ErrUnavailable. ErrValidation marks input rejected before any
// request was made.
//
// # Concurrency & Contexts
//
// HTTPClient holds no per-request state and is safe for concurrent use.
// All operations accept context.Context and honor cancellation.
package client
