// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/export"
	"github.com/guttosm/catalog-service/internal/order"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Catalog(filter string) []model.Product {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Product)
}

func (m *MockOrderService) Conditions() model.PurchaseConditions {
	args := m.Called()
	return args.Get(0).(model.PurchaseConditions)
}

func (m *MockOrderService) ContactLink() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockOrderService) CreateOrder(ctx context.Context) (*order.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Session), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*order.Session, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Session), args.Error(1)
}

func (m *MockOrderService) SetQuantity(ctx context.Context, orderID, productID, raw string) (int, error) {
	args := m.Called(ctx, orderID, productID, raw)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderService) ResetOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) View(ctx context.Context, orderID, filter string) (model.OrderView, error) {
	args := m.Called(ctx, orderID, filter)
	return args.Get(0).(model.OrderView), args.Error(1)
}

func (m *MockOrderService) ExportCSV(ctx context.Context, orderID, filter string, sink export.Sink) (export.CSVResult, error) {
	args := m.Called(ctx, orderID, filter, sink)
	return args.Get(0).(export.CSVResult), args.Error(1)
}

func (m *MockOrderService) ExportWhatsApp(ctx context.Context, orderID, filter string, sink export.Sink) (export.MessageResult, error) {
	args := m.Called(ctx, orderID, filter, sink)
	return args.Get(0).(export.MessageResult), args.Error(1)
}

func (m *MockOrderService) Close() {
	m.Called()
}
