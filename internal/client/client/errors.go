package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrSessionExpired = errors.New("session expired, please login again")
	ErrNotFound       = errors.New("not found")
	ErrRequestFailed  = errors.New("request failed")
	ErrUnavailable    = errors.New("server unavailable")
)

// RequestError is a non-success response other than 401/404.
// Message is derived from the response body.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrRequestFailed) match any RequestError.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// ValidationError wraps ErrValidation with a human-readable reason.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// ParseErrorBody extracts a message from a backend error payload of the form
// {"detail": ...}. A string detail is returned as is, a list of field errors
// is rendered as "loc.path: msg" entries joined by ", ", and any other detail
// is returned as compact JSON. Bodies without a usable detail yield fallback.
func ParseErrorBody(body []byte, fallback string) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &env) != nil {
		return fallback
	}
	detail := bytes.TrimSpace(env.Detail)
	if len(detail) == 0 || string(detail) == "null" {
		return fallback
	}

	var s string
	if err := json.Unmarshal(detail, &s); err == nil {
		if s == "" {
			return fallback
		}
		return s
	}

	var items []fieldError
	if err := json.Unmarshal(detail, &items); err == nil {
		if len(items) == 0 {
			return fallback
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			parts = append(parts, it.String())
		}
		return strings.Join(parts, ", ")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, detail); err != nil {
		return fallback
	}
	return buf.String()
}

func (f fieldError) String() string {
	if len(f.Loc) == 0 {
		return f.Msg
	}
	loc := make([]string, len(f.Loc))
	for i, p := range f.Loc {
		loc[i] = fmt.Sprint(p)
	}
	return strings.Join(loc, ".") + ": " + f.Msg
}
