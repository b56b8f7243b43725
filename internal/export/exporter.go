package export

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/catalog-service/internal/domain/model"
)

// CSVResult describes a delivered CSV export.
type CSVResult struct {
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
	Content  string `json:"-"`
}

// MessageResult describes a delivered WhatsApp hand-off.
type MessageResult struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Exporter builds export artifacts and hands them to a Sink.
type Exporter struct {
	phone string
	now   func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithPhone sets the WhatsApp destination number.
func WithPhone(phone string) Option {
	return func(e *Exporter) {
		if phone != "" {
			e.phone = phone
		}
	}
}

// WithClock overrides the clock used for file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExporter creates an Exporter using DefaultPhone and the system clock.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		phone: DefaultPhone,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phone returns the configured WhatsApp number.
func (e *Exporter) Phone() string {
	return e.phone
}

// CSV serializes view and writes it to sink as pedido_<date>.csv.
func (e *Exporter) CSV(ctx context.Context, sink Sink, view model.OrderView) (CSVResult, error) {
	result := CSVResult{
		FileName: FileName(e.now()),
		Rows:     len(view.OrderedLines()),
		Content:  ToCSV(view.Lines),
	}
	if err := sink.WriteFile(ctx, result.FileName, []byte(result.Content)); err != nil {
		return CSVResult{}, fmt.Errorf("deliver csv export: %w", err)
	}
	return result, nil
}

// Message renders view as an order message, builds its deep link and opens it through sink.
func (e *Exporter) Message(ctx context.Context, sink Sink, view model.OrderView) (MessageResult, error) {
	msg := ToOrderMessage(view.Lines, view.Totals)
	result := MessageResult{
		Message: msg,
		URL:     DeepLink(e.phone, msg),
	}
	if err := sink.OpenURL(ctx, result.URL); err != nil {
		return MessageResult{}, fmt.Errorf("deliver whatsapp export: %w", err)
	}
	return result, nil
}

// ContactLink returns the enquiry deep link for the configured number.
func (e *Exporter) ContactLink() string {
	return ContactLink(e.phone)
}
