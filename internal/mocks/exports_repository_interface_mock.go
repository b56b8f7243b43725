// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catalog-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockExportsRepositoryInterface struct {
	mock.Mock
}

func (m *MockExportsRepositoryInterface) Create(ctx context.Context, doc *repository.ExportDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockExportsRepositoryInterface) Query(ctx context.Context, opts repository.ExportQueryOptions) ([]*repository.ExportDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ExportDocument), args.Error(1)
}

func (m *MockExportsRepositoryInterface) Count(ctx context.Context, opts repository.ExportQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
