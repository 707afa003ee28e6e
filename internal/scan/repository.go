package scan

import "context"

// Repository stores completed scan results, looked up by id from
// history payload refs.
type Repository interface {
	SaveResult(ctx context.Context, userID string, result *MenuScanResult) error
	GetResult(ctx context.Context, userID, resultID string) (*MenuScanResult, error)
}
