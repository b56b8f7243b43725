//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/guttosm/catalog-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
	assert.NoError(t, components.Close(context.Background()))
}

func TestNewExportsCircuitBreaker(t *testing.T) {
	cb := newExportsCircuitBreaker(config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	})

	gauge := metrics.CircuitBreakerState.WithLabelValues(exportLogBreakerName)
	assert.Equal(t, exportLogBreakerName, cb.Name())
	assert.Equal(t, float64(circuitbreaker.StateClosed), testutil.ToFloat64(gauge))

	err := cb.Execute(context.Background(), func() error { return errors.New("write failed") })
	assert.Error(t, err)

	assert.True(t, cb.IsOpen())
	assert.Equal(t, float64(circuitbreaker.StateOpen), testutil.ToFloat64(gauge))
}
