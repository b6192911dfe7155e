package tracker

import (
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Column is one board lane. Status is the backend status the lane shows.
type Column struct {
	Key    string
	Label  string
	Status models.Status
}

var columnOptions = []Column{
	{Key: "applied", Label: "Applied", Status: models.StatusApplied},
	{Key: "screen", Label: "Screen", Status: models.StatusOA},
	{Key: "interviewing", Label: "Interviewing", Status: models.StatusInterview},
	{Key: "offer", Label: "Offer", Status: models.StatusOffer},
	{Key: "withdrawn", Label: "Withdrawn", Status: models.StatusWithdrawn},
	{Key: "rejected", Label: "Rejected", Status: models.StatusRejected},
	// No backend status maps here yet, so the lane stays empty.
	{Key: "accepted", Label: "Accepted", Status: "accepted"},
}

var defaultColumnKeys = []string{"applied", "screen", "interviewing", "offer", "rejected"}

// ColumnOptions returns every selectable lane in display order.
func ColumnOptions() []Column {
	out := make([]Column, len(columnOptions))
	copy(out, columnOptions)
	return out
}

// DefaultColumnKeys returns the lanes shown when nothing was selected.
func DefaultColumnKeys() []string {
	out := make([]string, len(defaultColumnKeys))
	copy(out, defaultColumnKeys)
	return out
}

func lookupColumn(key string) (Column, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range columnOptions {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// SanitizeColumns drops unknown and repeated keys, keeping selection order.
func SanitizeColumns(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		c, ok := lookupColumn(k)
		if !ok || seen[c.Key] {
			continue
		}
		seen[c.Key] = true
		out = append(out, c.Key)
	}
	return out
}

// Lane is a column together with the records it holds.
type Lane struct {
	Column
	Items []models.Application
}

// GroupByColumns lays list out in the given lanes. A record lands in every
// lane whose status matches its own, ignoring case; records matching no
// lane are left out. Unknown keys are skipped.
func GroupByColumns(list []models.Application, keys []string) []Lane {
	keys = SanitizeColumns(keys)
	lanes := make([]Lane, 0, len(keys))
	for _, k := range keys {
		c, _ := lookupColumn(k)
		lane := Lane{Column: c, Items: []models.Application{}}
		for _, a := range list {
			if a.Status.Is(c.Status) {
				lane.Items = append(lane.Items, a)
			}
		}
		lanes = append(lanes, lane)
	}
	return lanes
}
