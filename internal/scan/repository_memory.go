package scan

import "context"

type InMemoryRepository struct {
	results map[string]map[string]*MenuScanResult
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		results: make(map[string]map[string]*MenuScanResult),
	}
}

func (r *InMemoryRepository) SaveResult(ctx context.Context, userID string, result *MenuScanResult) error {
	if r.results[userID] == nil {
		r.results[userID] = make(map[string]*MenuScanResult)
	}
	r.results[userID][result.ID] = result
	return nil
}

func (r *InMemoryRepository) GetResult(ctx context.Context, userID, resultID string) (*MenuScanResult, error) {
	return r.results[userID][resultID], nil
}
