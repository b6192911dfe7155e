package tracker

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Form holds the raw, user-entered values of the application form.
// DateApplied is a calendar date (YYYY-MM-DD).
type Form struct {
	CompanyName string
	Role        string
	Status      string
	CompanySize string
	JobURL      string
	DateApplied string
	Notes       string
	Location    string
	Recruiter   string
}

// FormFromApplication fills a form with the values of an existing record.
func FormFromApplication(a models.Application) Form {
	return Form{
		CompanyName: a.CompanyName,
		Role:        a.Role,
		Status:      string(a.Status.Canonical()),
		CompanySize: a.CompanySize,
		JobURL:      a.JobURL,
		DateApplied: a.DateOnly(),
		Notes:       a.Notes,
		Location:    a.Location,
		Recruiter:   a.Recruiter,
	}
}

// NormalizeDate turns a calendar date into the datetime the backend expects,
// YYYY-MM-DDT00:00:00. Values that already carry a time part are returned
// unchanged once their date part is checked.
func NormalizeDate(v string) (string, error) {
	v = strings.TrimSpace(v)
	day, clock, hasTime := strings.Cut(v, "T")
	if _, err := time.Parse(time.DateOnly, day); err != nil {
		return "", client.ValidationError("invalid date %q, expected YYYY-MM-DD", v)
	}
	if hasTime && clock != "" {
		if _, ok := models.ParseTimestamp(v); !ok {
			return "", client.ValidationError("invalid date %q, expected YYYY-MM-DD", v)
		}
		return v, nil
	}
	return day + "T00:00:00", nil
}

func parseFormStatus(v string) (models.Status, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.StatusSaved, nil
	}
	s, ok := models.ParseStatus(v)
	if !ok {
		return "", client.ValidationError("unknown status %q", v)
	}
	return s, nil
}

// BuildCreatePayload validates f and builds the create request body.
// Company name and role are required; status defaults to saved; optional
// fields are trimmed and only sent when non-blank.
func BuildCreatePayload(f Form) (*models.Payload, error) {
	company := strings.TrimSpace(f.CompanyName)
	role := strings.TrimSpace(f.Role)
	if company == "" {
		return nil, client.ValidationError("company name is required")
	}
	if role == "" {
		return nil, client.ValidationError("role is required")
	}
	status, err := parseFormStatus(f.Status)
	if err != nil {
		return nil, err
	}

	p := models.NewPayload()
	p.Set(models.FieldCompanyName, company)
	p.Set(models.FieldRole, role)
	p.Set(models.FieldStatus, string(status))

	for _, kv := range optionalFields(f) {
		if kv.value != "" {
			p.Set(kv.key, kv.value)
		}
	}

	if d := strings.TrimSpace(f.DateApplied); d != "" {
		norm, err := NormalizeDate(d)
		if err != nil {
			return nil, err
		}
		p.Set(models.FieldDateApplied, norm)
	}
	return p, nil
}

// BuildUpdatePayload builds an update body holding only the fields of f that
// are non-blank and differ from existing. A blank field never clears a
// stored value. The result may be empty.
func BuildUpdatePayload(f Form, existing models.Application) (*models.Payload, error) {
	p := models.NewPayload()

	if v := strings.TrimSpace(f.CompanyName); v != "" && v != existing.CompanyName {
		p.Set(models.FieldCompanyName, v)
	}
	if v := strings.TrimSpace(f.Role); v != "" && v != existing.Role {
		p.Set(models.FieldRole, v)
	}
	if strings.TrimSpace(f.Status) != "" {
		s, err := parseFormStatus(f.Status)
		if err != nil {
			return nil, err
		}
		if !s.Is(existing.Status) {
			p.Set(models.FieldStatus, string(s))
		}
	}

	current := map[string]string{
		models.FieldCompanySize: existing.CompanySize,
		models.FieldJobURL:      existing.JobURL,
		models.FieldNotes:       existing.Notes,
		models.FieldLocation:    existing.Location,
		models.FieldRecruiter:   existing.Recruiter,
	}
	for _, kv := range optionalFields(f) {
		if kv.value != "" && kv.value != current[kv.key] {
			p.Set(kv.key, kv.value)
		}
	}

	if d := strings.TrimSpace(f.DateApplied); d != "" {
		norm, err := NormalizeDate(d)
		if err != nil {
			return nil, err
		}
		if !sameDate(norm, existing.DateApplied) {
			p.Set(models.FieldDateApplied, norm)
		}
	}
	return p, nil
}

func sameDate(norm, stored string) bool {
	if stored == "" {
		return false
	}
	if s, err := NormalizeDate(stored); err == nil {
		stored = s
	}
	if norm == stored {
		return true
	}
	a, okA := models.ParseTimestamp(norm)
	b, okB := models.ParseTimestamp(stored)
	return okA && okB && a.Equal(b)
}

type field struct {
	key   string
	value string
}

func optionalFields(f Form) []field {
	return []field{
		{models.FieldCompanySize, strings.TrimSpace(f.CompanySize)},
		{models.FieldJobURL, strings.TrimSpace(f.JobURL)},
		{models.FieldNotes, strings.TrimSpace(f.Notes)},
		{models.FieldLocation, strings.TrimSpace(f.Location)},
		{models.FieldRecruiter, strings.TrimSpace(f.Recruiter)},
	}
}
