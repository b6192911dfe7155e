package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
)

const (
	KeyAccessToken = "access_token"
	KeyAuthStorage = "auth-storage"
)

// authSnapshot is the wrapped form of the token kept under KeyAuthStorage.
type authSnapshot struct {
	State struct {
		Token string `json:"token"`
	} `json:"state"`
	Version int `json:"version"`
}

// TokenStore persists the bearer token under two keys: the raw value and a
// versioned wrapper. Both are always written and removed together.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Load returns the stored token, or "" when none is stored. The raw key
// wins; the wrapper is only read when the raw key is missing.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, KeyAccessToken)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if ok && token != "" {
		return token, nil
	}

	raw, ok, err := repo.Get(ctx, KeyAuthStorage)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if !ok {
		return "", nil
	}

	var snap authSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return "", nil
	}
	return snap.State.Token, nil
}

// Save writes both keys in one transaction. An empty token clears them.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	var snap authSnapshot
	snap.State.Token = token
	wrapped, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode token snapshot: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAccessToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyAuthStorage, string(wrapped))
	})
}

// Clear removes both keys.
func (s *TokenStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, KeyAccessToken, KeyAuthStorage)
}
