package models

import "strings"

// Status is the pipeline stage of an application. The canonical form is
// lower-case; values coming from older backends may be upper-case, so all
// comparisons go through Canonical.
type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusOA        Status = "oa"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

var allStatuses = []Status{
	StatusSaved,
	StatusApplied,
	StatusOA,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
}

// AllStatuses returns the enumeration in display order.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// Canonical returns the trimmed, lower-cased status.
func (s Status) Canonical() Status {
	return Status(strings.ToLower(strings.TrimSpace(string(s))))
}

// Known reports whether s is one of the enumerated statuses, ignoring case.
func (s Status) Known() bool {
	c := s.Canonical()
	for _, v := range allStatuses {
		if v == c {
			return true
		}
	}
	return false
}

// Is compares two statuses case-insensitively.
func (s Status) Is(other Status) bool {
	return s.Canonical() == other.Canonical()
}

// Closed reports whether the status ends the pipeline (rejected or withdrawn).
func (s Status) Closed() bool {
	return s.Is(StatusRejected) || s.Is(StatusWithdrawn)
}

// ParseStatus converts user input into a canonical Status.
// The second result is false when the input is not a known status.
func ParseStatus(v string) (Status, bool) {
	s := Status(v).Canonical()
	if !s.Known() {
		return "", false
	}
	return s, true
}
