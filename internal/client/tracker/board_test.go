package tracker

import (
	"testing"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeColumns(t *testing.T) {
	got := SanitizeColumns([]string{"offer", "bogus", " Screen ", "offer", "accepted"})
	assert.Equal(t, []string{"offer", "screen", "accepted"}, got)
	assert.Empty(t, SanitizeColumns(nil))
}

func TestDefaultColumnKeys_ReturnsCopy(t *testing.T) {
	d := DefaultColumnKeys()
	require.Equal(t, []string{"applied", "screen", "interviewing", "offer", "rejected"}, d)
	d[0] = "x"
	assert.Equal(t, "applied", DefaultColumnKeys()[0])
	assert.Len(t, ColumnOptions(), 7)
}

func TestGroupByColumns(t *testing.T) {
	list := []models.Application{
		{ID: 1, Status: "OA"},
		{ID: 2, Status: "applied"},
		{ID: 3, Status: "interview"},
		{ID: 4, Status: "oa"},
		{ID: 5},
	}

	lanes := GroupByColumns(list, []string{"screen", "applied", "nope", "accepted"})

	require.Len(t, lanes, 3)
	assert.Equal(t, "screen", lanes[0].Key)
	assert.Equal(t, "Screen", lanes[0].Label)
	assert.Equal(t, []int64{1, 4}, ids(lanes[0].Items))
	assert.Equal(t, []int64{2}, ids(lanes[1].Items))
	assert.Empty(t, lanes[2].Items)
}
