package tracker

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// RecentLimit bounds Aggregates.Recent.
const RecentLimit = 5

// Aggregates are the statistics derived from one list snapshot.
type Aggregates struct {
	Total int
	// Active counts records that have a status other than rejected or withdrawn.
	Active int
	// Counts has an entry for every enumerated status, zero included.
	Counts map[models.Status]int
	// Unrecognized counts records whose status is absent or unknown.
	Unrecognized int
	Percentages  map[models.Status]float64
	// Recent holds up to RecentLimit records, most recent activity first.
	Recent []models.Application
}

func (a Aggregates) Count(s models.Status) int {
	return a.Counts[s.Canonical()]
}

func (a Aggregates) Percentage(s models.Status) float64 {
	return a.Percentages[s.Canonical()]
}

// ComputeAggregates derives counts, percentages and recency ordering from
// list. For any list the per-status counts plus Unrecognized add up to Total.
func ComputeAggregates(list []models.Application) Aggregates {
	agg := Aggregates{
		Total:       len(list),
		Counts:      make(map[models.Status]int),
		Percentages: make(map[models.Status]float64),
	}
	for _, s := range models.AllStatuses() {
		agg.Counts[s] = 0
	}

	for _, a := range list {
		if a.Status.Canonical() != "" && !a.Status.Closed() {
			agg.Active++
		}
		if a.Status.Known() {
			agg.Counts[a.Status.Canonical()]++
		} else {
			agg.Unrecognized++
		}
	}

	for s, n := range agg.Counts {
		if agg.Total == 0 {
			agg.Percentages[s] = 0
			continue
		}
		agg.Percentages[s] = float64(n) * 100 / float64(agg.Total)
	}

	agg.Recent = recent(list, RecentLimit)
	return agg
}

type ranked struct {
	app models.Application
	at  time.Time
	ok  bool
}

func recent(list []models.Application, limit int) []models.Application {
	rs := make([]ranked, len(list))
	for i, a := range list {
		t, ok := a.ActivityTime()
		rs[i] = ranked{app: a, at: t, ok: ok}
	}

	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].ok != rs[j].ok {
			return rs[i].ok
		}
		return rs[i].at.After(rs[j].at)
	})

	if len(rs) > limit {
		rs = rs[:limit]
	}
	out := make([]models.Application, len(rs))
	for i, r := range rs {
		out[i] = r.app
	}
	return out
}
