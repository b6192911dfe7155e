package tracker

import (
	"testing"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAggregates_Empty(t *testing.T) {
	agg := ComputeAggregates(nil)

	assert.Equal(t, 0, agg.Total)
	assert.Equal(t, 0, agg.Active)
	assert.Empty(t, agg.Recent)
	require.Len(t, agg.Counts, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		assert.Equal(t, 0, agg.Count(s))
		assert.Zero(t, agg.Percentage(s))
	}
}

func TestComputeAggregates_CountsIgnoreCase(t *testing.T) {
	list := []models.Application{
		{ID: 1, Status: "APPLIED"},
		{ID: 2, Status: "applied"},
		{ID: 3, Status: "Rejected"},
		{ID: 4, Status: "withdrawn"},
		{ID: 5},
		{ID: 6, Status: "ghosted"},
		{ID: 7, Status: "offer"},
		{ID: 8, Status: "interview"},
	}

	agg := ComputeAggregates(list)

	assert.Equal(t, 8, agg.Total)
	// applied x2, offer, interview, ghosted
	assert.Equal(t, 5, agg.Active)
	assert.Equal(t, 2, agg.Count(models.StatusApplied))
	assert.Equal(t, 2, agg.Count("APPLIED"))
	assert.Equal(t, 1, agg.Count(models.StatusRejected))
	assert.Equal(t, 2, agg.Unrecognized)
	assert.InDelta(t, 25.0, agg.Percentage(models.StatusApplied), 1e-9)
	assert.InDelta(t, 12.5, agg.Percentage(models.StatusOffer), 1e-9)
	assert.Zero(t, agg.Percentage(models.StatusSaved))

	sum := agg.Unrecognized
	for _, n := range agg.Counts {
		sum += n
	}
	assert.Equal(t, agg.Total, sum)
}

func TestComputeAggregates_RecentOrdering(t *testing.T) {
	list := []models.Application{
		{ID: 1, CreatedAt: "2024-01-01T00:00:00"},
		{ID: 2, UpdatedAt: "2024-03-01T00:00:00", CreatedAt: "2023-01-01T00:00:00"},
		{ID: 3, LastActivity: "2024-02-01T00:00:00", UpdatedAt: "2024-06-01T00:00:00"},
		{ID: 4},
		{ID: 5, CreatedAt: "2024-04-01T12:00:00Z"},
		{ID: 6, LastActivity: "2024-05-01T00:00:00"},
		{ID: 7, CreatedAt: "2023-06-01T00:00:00"},
	}

	agg := ComputeAggregates(list)

	assert.Equal(t, []int64{6, 5, 2, 3, 1}, ids(agg.Recent))
}

func TestComputeAggregates_UndatedSortLastInListOrder(t *testing.T) {
	list := []models.Application{
		{ID: 1},
		{ID: 2, CreatedAt: "2024-01-01T00:00:00"},
		{ID: 3, LastActivity: "soon"},
	}

	agg := ComputeAggregates(list)

	assert.Equal(t, []int64{2, 1, 3}, ids(agg.Recent))
}
