package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportChannel names the channel an order was handed off to.
type ExportChannel string

const (
	// ExportChannelCSV is the delimited-text file download.
	ExportChannelCSV ExportChannel = "csv"
	// ExportChannelWhatsApp is the messaging deep link.
	ExportChannelWhatsApp ExportChannel = "whatsapp"
)

// ExportRecord is an audit entry written every time an order is exported.
//
// @Description Audit entry for an exported order
type ExportRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Timestamp        time.Time          `bson:"timestamp" json:"timestamp"`
	OrderID          string             `bson:"order_id" json:"order_id"`
	RequestID        string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Channel          ExportChannel      `bson:"channel" json:"channel"`
	Filter           string             `bson:"filter,omitempty" json:"filter,omitempty"`
	DistinctProducts int                `bson:"distinct_products" json:"distinct_products"`
	TotalItems       int                `bson:"total_items" json:"total_items"`
	TotalVolume      float64            `bson:"total_volume" json:"total_volume"`
	TotalCost        string             `bson:"total_cost" json:"total_cost"`
	Target           string             `bson:"target,omitempty" json:"target,omitempty"`
} // @name ExportRecord

// NewExportRecord builds an audit entry from the exported totals.
func NewExportRecord(orderID string, channel ExportChannel, filter string, totals OrderTotals) *ExportRecord {
	return &ExportRecord{
		Timestamp:        time.Now(),
		OrderID:          orderID,
		Channel:          channel,
		Filter:           filter,
		DistinctProducts: totals.DistinctProducts,
		TotalItems:       totals.TotalItems,
		TotalVolume:      totals.TotalVolume,
		TotalCost:        totals.TotalCost.StringFixed(2),
	}
}

// ExportQueryOptions filters export log queries.
type ExportQueryOptions struct {
	OrderID string
	Channel ExportChannel
	Limit   int
	Skip    int
}

// TotalCostDecimal parses the stored total cost back into a decimal.
func (r *ExportRecord) TotalCostDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(r.TotalCost)
	if err != nil {
		return decimal.Zero
	}
	return d
}
