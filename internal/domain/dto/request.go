// Package dto defines the request and response bodies of the HTTP API.
//
// DTOs decouple the wire format from the domain model: money is rendered
// both as a plain decimal string and in the storefront display convention.
package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/guttosm/catalog-service/internal/domain/model"
)

// RawQuantity is a quantity exactly as the user typed it. It accepts a JSON
// string or number so API clients can send either "10" or 10.
type RawQuantity string

// UnmarshalJSON accepts strings, numbers and null.
func (q *RawQuantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*q = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = RawQuantity(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*q = RawQuantity(n.String())
		return nil
	}
}

// SetQuantityRequest is the body of PUT /api/orders/{id}/items/{productId}.
//
// Quantity is parsed leniently: non-numeric input and values below 5 are
// stored as 0.
//
// @Description Request to set the ordered quantity of one product
// @Example {"quantity": "10"}
type SetQuantityRequest struct {
	Quantity *RawQuantity `json:"quantity" swaggertype:"string" example:"10"`
} // @name SetQuantityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingQuantity is returned when the quantity field is absent.
	ErrMissingQuantity = &ValidationError{
		Field:   "quantity",
		Message: "field is required",
	}
	// ErrInvalidChannel is returned for an unknown export channel filter.
	ErrInvalidChannel = &ValidationError{
		Field:   "channel",
		Message: "must be csv or whatsapp",
	}
)

// Validate checks that a quantity was supplied. Any supplied value is valid.
func (r *SetQuantityRequest) Validate() error {
	if r.Quantity == nil {
		return ErrMissingQuantity
	}
	return nil
}

// Raw returns the supplied quantity text.
func (r *SetQuantityRequest) Raw() string {
	if r.Quantity == nil {
		return ""
	}
	return string(*r.Quantity)
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ListExportsQuery holds the query parameters of GET /api/exports.
type ListExportsQuery struct {
	OrderID string `form:"order_id"`
	Channel string `form:"channel"`
	Limit   int    `form:"limit"`
	Skip    int    `form:"skip"`
}

// Validate rejects unknown channels.
func (q *ListExportsQuery) Validate() error {
	switch model.ExportChannel(q.Channel) {
	case "", model.ExportChannelCSV, model.ExportChannelWhatsApp:
		return nil
	default:
		return ErrInvalidChannel
	}
}

// Options converts the query to export log query options.
func (q *ListExportsQuery) Options() model.ExportQueryOptions {
	return model.ExportQueryOptions{
		OrderID: q.OrderID,
		Channel: model.ExportChannel(q.Channel),
		Limit:   q.Limit,
		Skip:    q.Skip,
	}
}

// boolParam interprets flag-style query values such as redirect=1.
func boolParam(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// WhatsAppExportQuery holds the query parameters of the WhatsApp export.
type WhatsAppExportQuery struct {
	Filter   string `form:"q"`
	Redirect string `form:"redirect"`
}

// ShouldRedirect reports whether the client asked for a 302 to the deep link.
func (q *WhatsAppExportQuery) ShouldRedirect() bool {
	return boolParam(q.Redirect)
}
