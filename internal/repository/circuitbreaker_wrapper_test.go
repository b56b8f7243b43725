//go:build !integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/guttosm/catalog-service/internal/mocks"
	"github.com/guttosm/catalog-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test-exports",
	})
}

func TestExportsRepositoryWithCircuitBreaker_Create(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name      string
		setupMock func(*mocks.MockExportsRepositoryInterface)
		calls     int
		wantErr   []error
		wantState circuitbreaker.State
	}{
		{
			name: "passes through success",
			setupMock: func(m *mocks.MockExportsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			calls:     1,
			wantErr:   []error{nil},
			wantState: circuitbreaker.StateClosed,
		},
		{
			name: "returns failure then drops writes while open",
			setupMock: func(m *mocks.MockExportsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()
			},
			calls:     2,
			wantErr:   []error{dbErr, nil},
			wantState: circuitbreaker.StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := new(mocks.MockExportsRepositoryInterface)
			tt.setupMock(inner)
			cb := newBreaker()
			repo := repository.NewExportsRepositoryWithCircuitBreaker(inner, cb)

			for i := 0; i < tt.calls; i++ {
				err := repo.Create(context.Background(), &repository.ExportDocument{OrderID: "o-1"})
				if tt.wantErr[i] == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr[i])
				}
			}

			assert.Equal(t, tt.wantState, cb.State())
			assert.Same(t, cb, repo.GetCircuitBreaker())
			inner.AssertExpectations(t)
		})
	}
}

func TestExportsRepositoryWithCircuitBreaker_Query(t *testing.T) {
	inner := new(mocks.MockExportsRepositoryInterface)
	docs := []*repository.ExportDocument{{OrderID: "o-1", Channel: "csv"}}
	opts := repository.ExportQueryOptions{Channel: "csv", Limit: 10}
	inner.On("Query", mock.Anything, opts).Return(docs, nil).Once()
	inner.On("Count", mock.Anything, opts).Return(int64(0), errors.New("timeout")).Once()

	repo := repository.NewExportsRepositoryWithCircuitBreaker(inner, newBreaker())

	got, err := repo.Query(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, docs, got)

	_, err = repo.Count(context.Background(), opts)
	require.Error(t, err)

	_, err = repo.Query(context.Background(), opts)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	inner.AssertExpectations(t)
}
