package db

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocStore reads and writes whole JSON documents keyed by
// (user, store key). Feature repositories wrap it with a fixed key.
type DocStore struct {
	db *pgxpool.Pool
}

func NewDocStore(db *pgxpool.Pool) *DocStore {
	return &DocStore{db: db}
}

// Get loads the document into out. A missing row leaves out untouched
// so callers get their zero/default value. A corrupted document is
// treated the same way — local data must degrade, not crash.
func (s *DocStore) Get(ctx context.Context, userID, storeKey string, out any) error {
	var raw []byte

	err := s.db.QueryRow(ctx, `
		SELECT data
		FROM doc_stores
		WHERE user_id = $1 AND store_key = $2
	`, userID, storeKey).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("doc_stores: corrupted document user=%s key=%s, using defaults", userID, storeKey)
		return nil
	}
	return nil
}

// Set replaces the whole document.
func (s *DocStore) Set(ctx context.Context, userID, storeKey string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO doc_stores (user_id, store_key, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, store_key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, userID, storeKey, raw)

	return err
}
