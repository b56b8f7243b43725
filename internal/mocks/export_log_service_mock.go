// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockExportLogService struct {
	mock.Mock
}

func (m *MockExportLogService) Record(ctx context.Context, record *model.ExportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExportLogService) List(ctx context.Context, opts model.ExportQueryOptions) ([]model.ExportRecord, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExportRecord), args.Error(1)
}

func (m *MockExportLogService) Count(ctx context.Context, opts model.ExportQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
