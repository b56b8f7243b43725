package repository

import "context"

// ExportsRepositoryInterface defines the export log storage operations.
type ExportsRepositoryInterface interface {
	Create(ctx context.Context, doc *ExportDocument) error
	Query(ctx context.Context, opts ExportQueryOptions) ([]*ExportDocument, error)
	Count(ctx context.Context, opts ExportQueryOptions) (int64, error)
}

var (
	_ ExportsRepositoryInterface = (*ExportsRepository)(nil)
	_ ExportsRepositoryInterface = (*ExportsRepositoryWithCircuitBreaker)(nil)
)
