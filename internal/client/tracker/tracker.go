package tracker

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// Tracker is the list of applications held by one view. Backend errors are
// returned to the caller untouched; the list only changes on success.
type Tracker struct {
	client client.Client
	log    logging.Logger

	mu    sync.Mutex
	items []models.Application
}

func New(c client.Client, log logging.Logger) *Tracker {
	if log == nil {
		log = logging.Nop()
	}
	return &Tracker{client: c, log: log, items: []models.Application{}}
}

// Refresh replaces the list with the backend's current one.
func (t *Tracker) Refresh(ctx context.Context) error {
	list, err := t.client.ListApplications(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.items = append([]models.Application(nil), list...)
	t.mu.Unlock()

	t.log.Debug(ctx, "applications refreshed", "count", len(list))
	return nil
}

// Submit creates a record when existing is nil and updates it otherwise. The
// record returned by the backend is merged into the list and returned.
func (t *Tracker) Submit(ctx context.Context, f Form, existing *models.Application) (*models.Application, error) {
	if existing == nil {
		p, err := BuildCreatePayload(f)
		if err != nil {
			return nil, err
		}
		rec, err := t.client.CreateApplication(ctx, p)
		if err != nil {
			return nil, err
		}

		t.mu.Lock()
		t.items = MergeCreated(t.items, *rec)
		t.mu.Unlock()

		t.log.Info(ctx, "application created", "id", rec.ID)
		return rec, nil
	}

	p, err := BuildUpdatePayload(f, *existing)
	if err != nil {
		return nil, err
	}
	rec, err := t.client.UpdateApplication(ctx, existing.ID, p)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.items = MergeUpdated(t.items, *rec)
	t.mu.Unlock()

	t.log.Info(ctx, "application updated", "id", rec.ID, "fields", p.Keys())
	return rec, nil
}

// Delete removes the record on the backend and then from the list.
func (t *Tracker) Delete(ctx context.Context, id int64) error {
	if err := t.client.DeleteApplication(ctx, id); err != nil {
		return err
	}

	t.mu.Lock()
	t.items = Remove(t.items, id)
	t.mu.Unlock()

	t.log.Info(ctx, "application deleted", "id", id)
	return nil
}

// Get fetches one record. When the record is already listed the fetched
// copy replaces it.
func (t *Tracker) Get(ctx context.Context, id int64) (*models.Application, error) {
	rec, err := t.client.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	if _, ok := find(t.items, rec.ID); ok {
		t.items = MergeUpdated(t.items, *rec)
	}
	t.mu.Unlock()

	return rec, nil
}

// Items returns a copy of the list.
func (t *Tracker) Items() []models.Application {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Application{}, t.items...)
}

// Find looks a record up in the list without a request.
func (t *Tracker) Find(id int64) (models.Application, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return find(t.items, id)
}

func (t *Tracker) Stats() Aggregates {
	return ComputeAggregates(t.Items())
}

// Board groups the current list into the given lanes.
func (t *Tracker) Board(keys []string) []Lane {
	return GroupByColumns(t.Items(), keys)
}

// Reset empties the list, e.g. after logout.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.items = []models.Application{}
	t.mu.Unlock()
}
