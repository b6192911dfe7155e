package models

import (
	"strings"
	"time"
)

// Application is one tracked job application as returned by the backend.
//
// ID and UserID are assigned by the server and never change. CompanyName and
// Role are always present on persisted records; every other field may be
// empty. Timestamps are kept in the wire format the backend used.
type Application struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	CompanyName  string `json:"company_name"`
	Role         string `json:"role"`
	Status       Status `json:"status,omitempty"`
	CompanySize  string `json:"company_size,omitempty"`
	JobURL       string `json:"job_url,omitempty"`
	DateApplied  string `json:"date_applied,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Location     string `json:"location,omitempty"`
	Recruiter    string `json:"recruiter,omitempty"`
	LastActivity string `json:"last_activity,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Payload field names shared by create and update requests.
const (
	FieldCompanyName = "company_name"
	FieldRole        = "role"
	FieldStatus      = "status"
	FieldCompanySize = "company_size"
	FieldJobURL      = "job_url"
	FieldDateApplied = "date_applied"
	FieldNotes       = "notes"
	FieldLocation    = "location"
	FieldRecruiter   = "recruiter"
)

// timestampLayouts are the shapes the backend is known to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses a backend timestamp. Values without a zone are
// treated as UTC.
func ParseTimestamp(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ActivityTime returns the best available activity timestamp: last_activity,
// then updated_at, then created_at. The first non-empty field wins even if it
// cannot be parsed.
func (a Application) ActivityTime() (time.Time, bool) {
	for _, v := range []string{a.LastActivity, a.UpdatedAt, a.CreatedAt} {
		if strings.TrimSpace(v) != "" {
			return ParseTimestamp(v)
		}
	}
	return time.Time{}, false
}

// DateOnly returns the calendar part of DateApplied (YYYY-MM-DD).
func (a Application) DateOnly() string {
	d, _, _ := strings.Cut(a.DateApplied, "T")
	return d
}
