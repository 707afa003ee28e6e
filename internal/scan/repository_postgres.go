package scan

import (
	"context"

	"github.com/alexshipulin/Buddy/internal/db"
)

const resultsKey = "buddy_scan_results"

type resultsDoc struct {
	ResultsByID map[string]*MenuScanResult `json:"scanResultsById"`
}

type PostgresRepository struct {
	store *db.DocStore
}

func NewPostgresRepository(store *db.DocStore) *PostgresRepository {
	return &PostgresRepository{store: store}
}

func (r *PostgresRepository) SaveResult(ctx context.Context, userID string, result *MenuScanResult) error {
	var doc resultsDoc
	if err := r.store.Get(ctx, userID, resultsKey, &doc); err != nil {
		return err
	}
	if doc.ResultsByID == nil {
		doc.ResultsByID = make(map[string]*MenuScanResult)
	}
	doc.ResultsByID[result.ID] = result
	return r.store.Set(ctx, userID, resultsKey, doc)
}

func (r *PostgresRepository) GetResult(ctx context.Context, userID, resultID string) (*MenuScanResult, error) {
	var doc resultsDoc
	if err := r.store.Get(ctx, userID, resultsKey, &doc); err != nil {
		return nil, err
	}
	return doc.ResultsByID[resultID], nil
}
