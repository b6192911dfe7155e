package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/metadata"
)

const KeyBoardColumns = "kanban-columns"

// PreferencesStore keeps view preferences that survive restarts.
type PreferencesStore struct {
	repo metadata.Repository
}

func NewPreferencesStore(db *sql.DB) *PreferencesStore {
	return &PreferencesStore{repo: metadata.NewSQLiteRepository(db)}
}

// BoardColumns returns the saved column keys. The second result is false
// when nothing was saved or the stored value is unreadable.
func (p *PreferencesStore) BoardColumns(ctx context.Context) ([]string, bool, error) {
	raw, ok, err := p.repo.Get(ctx, KeyBoardColumns)
	if err != nil {
		return nil, false, fmt.Errorf("load board columns: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var cols []string
	if err := json.Unmarshal([]byte(raw), &cols); err != nil {
		return nil, false, nil
	}
	return cols, true, nil
}

func (p *PreferencesStore) SetBoardColumns(ctx context.Context, cols []string) error {
	if cols == nil {
		cols = []string{}
	}
	b, err := json.Marshal(cols)
	if err != nil {
		return fmt.Errorf("encode board columns: %w", err)
	}
	return p.repo.Set(ctx, KeyBoardColumns, string(b))
}

func (p *PreferencesStore) ResetBoardColumns(ctx context.Context) error {
	return p.repo.Delete(ctx, KeyBoardColumns)
}
