package service

import (
	"context"
	"time"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultExportQueryLimit caps export log queries that do not set a limit.
const DefaultExportQueryLimit = 50

// MaxExportQueryLimit is the largest page the export log will return.
const MaxExportQueryLimit = 500

// ExportLogService records and lists order exports.
type ExportLogService interface {
	// Record stores one export entry.
	Record(ctx context.Context, record *model.ExportRecord) error

	// List returns export entries matching opts, newest first.
	List(ctx context.Context, opts model.ExportQueryOptions) ([]model.ExportRecord, error)

	// Count returns the number of export entries matching opts.
	Count(ctx context.Context, opts model.ExportQueryOptions) (int64, error)
}

// ExportLogServiceImpl implements ExportLogService over a repository.
type ExportLogServiceImpl struct {
	repo repository.ExportsRepositoryInterface
}

// NewExportLogService creates a new export log service.
func NewExportLogService(repo repository.ExportsRepositoryInterface) ExportLogService {
	return &ExportLogServiceImpl{repo: repo}
}

// Record stores one export entry, assigning an ID and timestamp if unset.
func (s *ExportLogServiceImpl) Record(ctx context.Context, record *model.ExportRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	return s.repo.Create(ctx, recordToDocument(record))
}

// List returns export entries matching opts.
func (s *ExportLogServiceImpl) List(ctx context.Context, opts model.ExportQueryOptions) ([]model.ExportRecord, error) {
	docs, err := s.repo.Query(ctx, queryOptions(opts))
	if err != nil {
		return nil, err
	}

	records := make([]model.ExportRecord, len(docs))
	for i, doc := range docs {
		records[i] = documentToRecord(doc)
	}
	return records, nil
}

// Count returns the number of export entries matching opts.
func (s *ExportLogServiceImpl) Count(ctx context.Context, opts model.ExportQueryOptions) (int64, error) {
	return s.repo.Count(ctx, queryOptions(opts))
}

func queryOptions(opts model.ExportQueryOptions) repository.ExportQueryOptions {
	limit := opts.Limit
	switch {
	case limit <= 0:
		limit = DefaultExportQueryLimit
	case limit > MaxExportQueryLimit:
		limit = MaxExportQueryLimit
	}
	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}

	return repository.ExportQueryOptions{
		OrderID: opts.OrderID,
		Channel: string(opts.Channel),
		Limit:   limit,
		Skip:    skip,
	}
}

func recordToDocument(r *model.ExportRecord) *repository.ExportDocument {
	return &repository.ExportDocument{
		ID:               r.ID,
		Timestamp:        r.Timestamp,
		OrderID:          r.OrderID,
		RequestID:        r.RequestID,
		Channel:          string(r.Channel),
		Filter:           r.Filter,
		DistinctProducts: r.DistinctProducts,
		TotalItems:       r.TotalItems,
		TotalVolume:      r.TotalVolume,
		TotalCost:        r.TotalCost,
		Target:           r.Target,
	}
}

func documentToRecord(doc *repository.ExportDocument) model.ExportRecord {
	return model.ExportRecord{
		ID:               doc.ID,
		Timestamp:        doc.Timestamp,
		OrderID:          doc.OrderID,
		RequestID:        doc.RequestID,
		Channel:          model.ExportChannel(doc.Channel),
		Filter:           doc.Filter,
		DistinctProducts: doc.DistinctProducts,
		TotalItems:       doc.TotalItems,
		TotalVolume:      doc.TotalVolume,
		TotalCost:        doc.TotalCost,
		Target:           doc.Target,
	}
}
