package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/metadata"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_CreatesSchemaAndIsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='metadata'`).Scan(&n))
	assert.Equal(t, 1, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='goose_db_version'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	_, err := Open(context.Background(), ":memory:")
	require.ErrorContains(t, err, "migrate local state")
}

func TestTokenStore_RoundTripWritesBothKeys(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	s := NewTokenStore(db)

	tok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.Save(ctx, "abc"))

	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	m, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", m[KeyAccessToken])
	assert.JSONEq(t, `{"state":{"token":"abc"},"version":0}`, m[KeyAuthStorage])
}

func TestTokenStore_FallsBackToWrapper(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, KeyAuthStorage, `{"state":{"token":"wrapped"},"version":0}`))

	tok, err := NewTokenStore(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wrapped", tok)
}

func TestTokenStore_CorruptWrapperIsIgnored(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, KeyAuthStorage, `{not json`))

	tok, err := NewTokenStore(db).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestTokenStore_ClearRemovesBothKeys(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	s := NewTokenStore(db)

	require.NoError(t, s.Save(ctx, "abc"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	m, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)

	require.NoError(t, s.Save(ctx, "x"))
	require.NoError(t, s.Save(ctx, ""))
	tok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestPreferencesStore_BoardColumns(t *testing.T) {
	ctx := context.Background()
	p := NewPreferencesStore(openTestDB(t))

	_, ok, err := p.BoardColumns(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetBoardColumns(ctx, []string{"applied", "offer"}))
	cols, ok, err := p.BoardColumns(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"applied", "offer"}, cols)

	require.NoError(t, p.ResetBoardColumns(ctx))
	_, ok, err = p.BoardColumns(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
