package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/catalog-service/internal/catalog"
	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/export"
	"github.com/guttosm/catalog-service/internal/logger"
	"github.com/guttosm/catalog-service/internal/metrics"
	"github.com/guttosm/catalog-service/internal/order"
	"github.com/guttosm/catalog-service/internal/service/cache"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned for unknown or expired order sessions.
var ErrOrderNotFound = errors.New("order not found")

const (
	// DefaultSessionCapacity is the number of live orders kept in memory.
	DefaultSessionCapacity = 1000
	// DefaultSessionTTL is how long an untouched order stays alive.
	DefaultSessionTTL = 2 * time.Hour
	// defaultExportLogTimeout bounds a single export log write.
	defaultExportLogTimeout = 2 * time.Second
)

// OrderService defines the storefront operations shared by the HTTP API
// and the CLI.
type OrderService interface {
	// Catalog returns the products matching filter.
	Catalog(filter string) []model.Product

	// Conditions returns the wholesale purchase conditions.
	Conditions() model.PurchaseConditions

	// ContactLink returns the enquiry deep link.
	ContactLink() string

	// CreateOrder starts an empty order session.
	CreateOrder(ctx context.Context) (*order.Session, error)

	// GetOrder returns a live order session.
	GetOrder(ctx context.Context, orderID string) (*order.Session, error)

	// SetQuantity parses and stores a quantity for one product and returns the stored value.
	SetQuantity(ctx context.Context, orderID, productID, raw string) (int, error)

	// ResetOrder clears every quantity of an order.
	ResetOrder(ctx context.Context, orderID string) error

	// View aggregates an order over the products matching filter.
	View(ctx context.Context, orderID, filter string) (model.OrderView, error)

	// ExportCSV delivers the filtered order as a CSV file through sink.
	ExportCSV(ctx context.Context, orderID, filter string, sink export.Sink) (export.CSVResult, error)

	// ExportWhatsApp delivers the filtered order as a WhatsApp deep link through sink.
	ExportWhatsApp(ctx context.Context, orderID, filter string, sink export.Sink) (export.MessageResult, error)

	// Close releases background resources.
	Close()
}

// OrderServiceImpl implements OrderService with in-memory sessions.
type OrderServiceImpl struct {
	catalog          catalog.Source
	exporter         *export.Exporter
	sessions         cache.CacheWithMetrics
	exportLog        ExportLogService
	exportLogTimeout time.Duration
	conditions       model.PurchaseConditions
	sessionCapacity  int
	sessionTTL       time.Duration
	newID            func() string
}

// Option configures an OrderServiceImpl.
type Option func(*OrderServiceImpl)

// WithExporter sets the exporter used for CSV and WhatsApp hand-offs.
func WithExporter(e *export.Exporter) Option {
	return func(s *OrderServiceImpl) {
		if e != nil {
			s.exporter = e
		}
	}
}

// WithExportLog records every successful export in log.
func WithExportLog(log ExportLogService) Option {
	return func(s *OrderServiceImpl) {
		s.exportLog = log
	}
}

// WithExportLogTimeout bounds each export log write.
func WithExportLogTimeout(d time.Duration) Option {
	return func(s *OrderServiceImpl) {
		if d > 0 {
			s.exportLogTimeout = d
		}
	}
}

// WithMinimumPurchase sets the minimum order value.
func WithMinimumPurchase(amount decimal.Decimal) Option {
	return func(s *OrderServiceImpl) {
		if !amount.IsNegative() {
			s.conditions.MinimumPurchase = amount
		}
	}
}

// WithSessionLimits sets the session cache capacity and idle TTL.
func WithSessionLimits(capacity int, ttl time.Duration) Option {
	return func(s *OrderServiceImpl) {
		if capacity > 0 {
			s.sessionCapacity = capacity
		}
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithSessionCache replaces the session cache.
func WithSessionCache(c cache.CacheWithMetrics) Option {
	return func(s *OrderServiceImpl) {
		s.sessions = c
	}
}

// WithIDGenerator overrides order ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *OrderServiceImpl) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewOrderService creates an order service over src.
func NewOrderService(src catalog.Source, opts ...Option) *OrderServiceImpl {
	s := &OrderServiceImpl{
		catalog:          src,
		exporter:         export.NewExporter(),
		exportLogTimeout: defaultExportLogTimeout,
		conditions: model.PurchaseConditions{
			MinimumPurchase: model.DefaultMinimumPurchase,
			MinimumQuantity: order.MinimumQuantity,
		},
		sessionCapacity: DefaultSessionCapacity,
		sessionTTL:      DefaultSessionTTL,
		newID:           func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = newSessionCache(s.sessionCapacity, s.sessionTTL)
	}
	metrics.UpdateSessionCapacity(s.sessions.Metrics().Capacity)
	return s
}

// Catalog returns the products matching filter.
func (s *OrderServiceImpl) Catalog(filter string) []model.Product {
	products := s.catalog.Products()
	if filter == "" {
		return products
	}
	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if catalog.Matches(p, filter) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Conditions returns the wholesale purchase conditions.
func (s *OrderServiceImpl) Conditions() model.PurchaseConditions {
	return s.conditions
}

// ContactLink returns the enquiry deep link.
func (s *OrderServiceImpl) ContactLink() string {
	return s.exporter.ContactLink()
}

// CreateOrder starts an empty order session.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context) (*order.Session, error) {
	session := order.NewSession(s.newID(), s.catalog)
	s.sessions.Set(session.ID, session)

	logger.FromContext(ctx).Debug().Str("order_id", session.ID).Msg("Order session created")
	return session, nil
}

// GetOrder returns a live order session.
func (s *OrderServiceImpl) GetOrder(_ context.Context, orderID string) (*order.Session, error) {
	session, ok := s.sessions.Get(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return session, nil
}

// SetQuantity parses and stores a quantity for one product.
func (s *OrderServiceImpl) SetQuantity(ctx context.Context, orderID, productID, raw string) (int, error) {
	session, err := s.GetOrder(ctx, orderID)
	if err != nil {
		metrics.RecordQuantityUpdate("order_not_found")
		return 0, err
	}

	stored, err := session.SetQuantity(productID, raw)
	if err != nil {
		metrics.RecordQuantityUpdate("unknown_product")
		return 0, err
	}

	if stored == 0 {
		metrics.RecordQuantityUpdate("cleared")
	} else {
		metrics.RecordQuantityUpdate("accepted")
	}
	return stored, nil
}

// ResetOrder clears every quantity of an order.
func (s *OrderServiceImpl) ResetOrder(ctx context.Context, orderID string) error {
	session, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	session.Reset()
	return nil
}

// View aggregates an order over the products matching filter.
func (s *OrderServiceImpl) View(ctx context.Context, orderID, filter string) (model.OrderView, error) {
	session, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return model.OrderView{}, err
	}
	return session.View(filter), nil
}

// ExportCSV delivers the filtered order as a CSV file through sink.
func (s *OrderServiceImpl) ExportCSV(ctx context.Context, orderID, filter string, sink export.Sink) (export.CSVResult, error) {
	start := time.Now()
	view, err := s.View(ctx, orderID, filter)
	if err != nil {
		return export.CSVResult{}, err
	}

	result, err := s.exporter.CSV(ctx, sink, view)
	if err != nil {
		metrics.RecordExport(string(model.ExportChannelCSV), "error", time.Since(start))
		return export.CSVResult{}, err
	}
	metrics.RecordExport(string(model.ExportChannelCSV), "success", time.Since(start))

	s.recordExport(ctx, orderID, model.ExportChannelCSV, filter, view.Totals, result.FileName)
	return result, nil
}

// ExportWhatsApp delivers the filtered order as a WhatsApp deep link through sink.
func (s *OrderServiceImpl) ExportWhatsApp(ctx context.Context, orderID, filter string, sink export.Sink) (export.MessageResult, error) {
	start := time.Now()
	view, err := s.View(ctx, orderID, filter)
	if err != nil {
		return export.MessageResult{}, err
	}

	result, err := s.exporter.Message(ctx, sink, view)
	if err != nil {
		metrics.RecordExport(string(model.ExportChannelWhatsApp), "error", time.Since(start))
		return export.MessageResult{}, err
	}
	metrics.RecordExport(string(model.ExportChannelWhatsApp), "success", time.Since(start))

	s.recordExport(ctx, orderID, model.ExportChannelWhatsApp, filter, view.Totals, s.exporter.Phone())
	return result, nil
}

// recordExport writes an export log entry. Failures are logged, never returned.
func (s *OrderServiceImpl) recordExport(ctx context.Context, orderID string, channel model.ExportChannel, filter string, totals model.OrderTotals, target string) {
	if s.exportLog == nil {
		return
	}

	record := model.NewExportRecord(orderID, channel, filter, totals)
	record.RequestID = logger.RequestIDFromContext(ctx)
	record.Target = target

	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.exportLogTimeout)
	defer cancel()

	if err := s.exportLog.Record(logCtx, record); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("order_id", orderID).
			Str("channel", string(channel)).
			Msg("Failed to record export")
	}
}

// SessionMetrics reports session cache statistics.
func (s *OrderServiceImpl) SessionMetrics() cache.Metrics {
	return s.sessions.Metrics()
}

// Close stops the session cache.
func (s *OrderServiceImpl) Close() {
	s.sessions.Stop()
}

var _ OrderService = (*OrderServiceImpl)(nil)
