package utils

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidPricingInput marks a pricing input outside its allowed range.
var ErrInvalidPricingInput = errors.New("invalid pricing input")

var hundred = decimal.NewFromInt(100)

// PricingInput are the per-ticket values the sale price is built from.
type PricingInput struct {
	Fare       Amount          `json:"fare"`
	BaseTax    Amount          `json:"baseTax"`
	RAVPercent decimal.Decimal `json:"ravPercent"`
	Fee        Amount          `json:"fee"`
	Incentive  Amount          `json:"incentive"`
}

// PricingResult is the commission/tax/total breakdown for one ticket.
type PricingResult struct {
	RAV          Amount `json:"rav"`
	Commission   Amount `json:"commission"`
	DisplayedTax Amount `json:"displayedTax"`
	Total        Amount `json:"total"`
}

// FarePricing is the breakdown for one fare line of a quotation.
type FarePricing struct {
	Category FareCategory  `json:"category"`
	Fare     Amount        `json:"fare"`
	Tax      Amount        `json:"tax"`
	Pricing  PricingResult `json:"pricing"`
}

// ComputeTotals builds the sale price. Every step is rounded half-up to two
// places before it feeds the next one:
//
//	rav          = fare * ravPercent / 100
//	commission   = rav + fee + incentive
//	displayedTax = baseTax + commission
//	total        = fare + displayedTax
func ComputeTotals(in PricingInput) PricingResult {
	rav := NewAmount(in.Fare.Mul(in.RAVPercent).Div(hundred))
	commission := NewAmount(rav.Add(in.Fee.Decimal).Add(in.Incentive.Decimal))
	displayedTax := NewAmount(in.BaseTax.Add(commission.Decimal))
	total := NewAmount(in.Fare.Add(displayedTax.Decimal))

	return PricingResult{
		RAV:          rav,
		Commission:   commission,
		DisplayedTax: displayedTax,
		Total:        total,
	}
}

// ValidatePricingInput reports every out-of-range field at once.
func ValidatePricingInput(in PricingInput) error {
	var errs []error
	nonNegative := []struct {
		field string
		value Amount
	}{
		{"fare", in.Fare},
		{"baseTax", in.BaseTax},
		{"fee", in.Fee},
		{"incentive", in.Incentive},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			errs = append(errs, fmt.Errorf("%w: %s must be >= 0, got %s", ErrInvalidPricingInput, f.field, f.value))
		}
	}
	if in.RAVPercent.IsNegative() || in.RAVPercent.GreaterThan(hundred) {
		errs = append(errs, fmt.Errorf("%w: ravPercent must be between 0 and 100, got %s", ErrInvalidPricingInput, in.RAVPercent))
	}
	return errors.Join(errs...)
}

// PriceQuotation prices each fare line of q with the quotation's fee and
// incentive applied per ticket.
func PriceQuotation(q Quotation, ravPercent decimal.Decimal) []FarePricing {
	out := make([]FarePricing, 0, len(q.FareLines))
	for _, line := range q.FareLines {
		out = append(out, FarePricing{
			Category: line.Category,
			Fare:     line.Fare,
			Tax:      line.Tax,
			Pricing: ComputeTotals(PricingInput{
				Fare:       line.Fare,
				BaseTax:    line.Tax,
				RAVPercent: ravPercent,
				Fee:        q.Fee,
				Incentive:  q.Incentive,
			}),
		})
	}
	return out
}
