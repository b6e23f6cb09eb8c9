// internal/domain/entity/quote_record.go
package entity

import (
	"time"
)

// Quote sources
const (
	SourceAPI   = "api"
	SourceEmail = "email"
	SourceCLI   = "cli"
)

// QuoteRecord is an archived quotation report. Money values are kept as
// their two-decimal string form so the store never does float arithmetic.
type QuoteRecord struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Source         string    `json:"source" bson:"source"`
	SourceID       string    `json:"sourceId,omitempty" bson:"sourceId,omitempty"` // gmail message id for imported emails
	Currency       string    `json:"currency" bson:"currency"`
	Fare           string    `json:"fare" bson:"fare"`
	BaseTax        string    `json:"baseTax" bson:"baseTax"`
	Fee            string    `json:"fee" bson:"fee"`
	Incentive      string    `json:"incentive" bson:"incentive"`
	Penalty        string    `json:"penalty" bson:"penalty"`
	RAVPercent     string    `json:"ravPercent" bson:"ravPercent"`
	Total          string    `json:"total" bson:"total"`
	IsMulti        bool      `json:"isMulti" bson:"isMulti"`
	QuotationCount int       `json:"quotationCount" bson:"quotationCount"`
	LegCount       int       `json:"legCount" bson:"legCount"`
	OvernightCount int       `json:"overnightCount" bson:"overnightCount"`
	DecoderSource  string    `json:"decoderSource,omitempty" bson:"decoderSource,omitempty"`
	RawText        string    `json:"rawText" bson:"rawText"`
	Report         string    `json:"report" bson:"report"` // full report JSON
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
