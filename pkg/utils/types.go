package utils

import (
	"encoding/json"
	"time"
)

// Currency is the quotation currency detected in the text.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBRL Currency = "BRL"
)

// FareCategory is the passenger category of a fare line.
type FareCategory string

const (
	CategoryAdult  FareCategory = "ADT"
	CategoryChild  FareCategory = "CHD"
	CategoryInfant FareCategory = "INF"
)

// IncentiveRule records which precedence rule produced the incentive.
type IncentiveRule string

const (
	IncentiveFixed   IncentiveRule = "fixed"
	IncentivePercent IncentiveRule = "percent"
	IncentiveNone    IncentiveRule = "none"
)

// FareLine is one (category, fare, tax) triple found in the text.
type FareLine struct {
	Category FareCategory `json:"category"`
	Fare     Amount       `json:"fare"`
	Tax      Amount       `json:"tax"`
}

// Quotation is the structured content of one quotation block.
type Quotation struct {
	Currency         Currency      `json:"currency"`
	FareLines        []FareLine    `json:"fareLines"`
	Fare             Amount        `json:"fare"`
	BaseTax          Amount        `json:"baseTax"`
	Fee              Amount        `json:"fee"`
	Incentive        Amount        `json:"incentive"`
	IncentivePercent Amount        `json:"incentivePercent"`
	IncentiveRule    IncentiveRule `json:"incentiveRule"`
	Penalty          Amount        `json:"penalty"`
	SegmentLines     []string      `json:"segmentLines"`
	PaymentHint      string        `json:"paymentHint"`
	BaggageHint      string        `json:"baggageHint"`
}

// HasContent reports whether the block carried fares or itinerary lines.
func (q Quotation) HasContent() bool {
	return len(q.FareLines) > 0 || len(q.SegmentLines) > 0
}

// ParseResult is the outcome of parsing one input. The embedded Quotation is
// the first (or only) quotation, kept flat for single-result consumers.
type ParseResult struct {
	Quotation
	Quotations []Quotation `json:"quotations,omitempty"`
	IsMulti    bool        `json:"isMulti,omitempty"`
}

// All returns every quotation in the result in input order.
func (r *ParseResult) All() []Quotation {
	if r.IsMulti {
		return r.Quotations
	}
	return []Quotation{r.Quotation}
}

// FlightSegment represents one decoded flight leg
type FlightSegment struct {
	SegNo            int       `json:"segNo"`
	CarrierCode      string    `json:"carrierCode"`
	CarrierName      string    `json:"carrierName"`
	FlightNumber     string    `json:"flightNumber"`
	Class            string    `json:"class"`
	DepartureAirport string    `json:"departureAirport"`
	DepartureName    string    `json:"departureName"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	ArrivalName      string    `json:"arrivalName"`
	DepartureTime    time.Time `json:"-"`
	ArrivalTime      time.Time `json:"-"`
	Overnight        bool      `json:"overnight"`
}

// MarshalJSON renders times as local wall-clock strings; the source text
// carries no zone.
func (s FlightSegment) MarshalJSON() ([]byte, error) {
	type alias FlightSegment
	return json.Marshal(struct {
		alias
		DepartureTime string `json:"departureTime"`
		ArrivalTime   string `json:"arrivalTime"`
	}{
		alias:         alias(s),
		DepartureTime: s.DepartureTime.Format(SEGMENT_TIME_LAYOUT),
		ArrivalTime:   s.ArrivalTime.Format(SEGMENT_TIME_LAYOUT),
	})
}

// DecodedItinerary is the decoder output for a set of segment lines.
type DecodedItinerary struct {
	Source         string          `json:"source"`
	OvernightCount int             `json:"overnightCount"`
	Legs           []FlightSegment `json:"legs"`
}

// Constants
const (
	SEGMENT_TIME_LAYOUT = "2006-01-02 15:04"

	SourceInternal = "internal-parser"
)
