package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ccyOptional = `(?:usd|eur|brl|US\$|R\$|€)?`
	ccyRequired = `(?:usd|eur|brl|US\$|R\$|€)`
	amountToken = `([\d.,]+)`
	incentiveKw = `\b(?:in|incentivo|bonus|inc)`
)

// Pattern matchers.
var (
	fareRe = regexp.MustCompile(`(?im)tarifa\s*` + ccyOptional + `\s*` + amountToken +
		`\s*\+\s*(?:txs?|taxas?)\s*` + ccyOptional + `\s*` + amountToken + `[ \t]*(\*.*)?$`)

	feeRe = regexp.MustCompile(`(?i)\b(?:fee|du|taxa de serviço)\s*` + ccyOptional + `\s*` + amountToken)

	incentivePctRe   = regexp.MustCompile(`(?i)` + incentiveKw + `\s*` + amountToken + `\s*%`)
	incentiveFixedRe = regexp.MustCompile(`(?i)` + incentiveKw + `\s*` + ccyRequired + `\s*` + amountToken)

	penaltyRe = regexp.MustCompile(`(?i)\btroca\s*` + ccyOptional + `\s*` + amountToken)

	segmentLineRe = regexp.MustCompile(`(?im)^[ \t]*[A-Z0-9]{2,4}[ \t]*\d{2,4}.*$`)

	paymentRe = regexp.MustCompile(`(?i)pagto\s*([^\n\r]+)`)
	baggageRe = regexp.MustCompile(`(?im)^[ \t]*\d+pc[^\r\n]*$`)
)

// currencyRules are checked in order; the first hit wins regardless of where
// in the text it occurs.
var currencyRules = []struct {
	currency Currency
	re       *regexp.Regexp
}{
	{CurrencyEUR, regexp.MustCompile(`(?i)\bEUR\b|€`)},
	{CurrencyBRL, regexp.MustCompile(`(?i)\bBRL\b|R\$`)},
}

// categoryRules map a lower-cased fare suffix to a category. No match means
// adult.
var categoryRules = []struct {
	category FareCategory
	markers  []string
}{
	{CategoryChild, []string{"chd", "child"}},
	{CategoryInfant, []string{"inf"}},
}

// FieldExtractor pulls quotation fields out of one block of text.
// It holds no state and is safe for concurrent use.
type FieldExtractor struct{}

// NewFieldExtractor creates a new field extractor
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{}
}

// Extract builds a Quotation from text. Missing fields take their defaults;
// only a captured amount that is not a number is an error.
func (e *FieldExtractor) Extract(text string) (Quotation, error) {
	text = normalizeNewlines(text)

	q := Quotation{
		Currency:         DetectCurrency(text),
		FareLines:        []FareLine{},
		Fare:             ZeroAmount,
		BaseTax:          ZeroAmount,
		Fee:              ZeroAmount,
		Incentive:        ZeroAmount,
		IncentivePercent: ZeroAmount,
		IncentiveRule:    IncentiveNone,
		Penalty:          ZeroAmount,
		SegmentLines:     []string{},
	}

	fares, err := extractFareLines(text)
	if err != nil {
		return Quotation{}, err
	}
	q.FareLines = fares
	if len(fares) > 0 {
		q.Fare = fares[0].Fare
		q.BaseTax = fares[0].Tax
	}

	if q.Fee, err = firstAmount(feeRe, text, "fee"); err != nil {
		return Quotation{}, err
	}
	if q.Penalty, err = firstAmount(penaltyRe, text, "penalty"); err != nil {
		return Quotation{}, err
	}

	fixed, err := firstAmount(incentiveFixedRe, text, "incentive")
	if err != nil {
		return Quotation{}, err
	}
	pct := decimal.Zero
	if m := incentivePctRe.FindStringSubmatch(text); len(m) > 1 {
		if pct, err = parseDecimal(m[1]); err != nil {
			return Quotation{}, fmt.Errorf("incentive percent: %w", err)
		}
	}
	q.IncentivePercent = NewAmount(pct)
	q.Incentive, q.IncentiveRule = ResolveIncentive(fixed, pct, q.Fare)

	for _, line := range segmentLineRe.FindAllString(text, -1) {
		q.SegmentLines = append(q.SegmentLines, line)
	}

	if m := paymentRe.FindStringSubmatch(text); len(m) > 1 {
		q.PaymentHint = strings.TrimSpace(m[1])
	}

	var bags []string
	for _, line := range baggageRe.FindAllString(text, -1) {
		bags = append(bags, strings.TrimSpace(line))
	}
	q.BaggageHint = strings.Join(bags, " / ")

	return q, nil
}

// DetectCurrency returns the first currency whose marker occurs in text, or
// USD when none does.
func DetectCurrency(text string) Currency {
	for _, rule := range currencyRules {
		if rule.re.MatchString(text) {
			return rule.currency
		}
	}
	return CurrencyUSD
}

// CategoryFromSuffix maps the free text after '*' on a fare line to a
// passenger category.
func CategoryFromSuffix(suffix string) FareCategory {
	low := strings.ToLower(strings.TrimLeft(strings.TrimSpace(suffix), "*"))
	for _, rule := range categoryRules {
		for _, marker := range rule.markers {
			if strings.Contains(low, marker) {
				return rule.category
			}
		}
	}
	return CategoryAdult
}

// incentiveRules are tried in order; the first that applies decides.
var incentiveRules = []struct {
	rule    IncentiveRule
	applies func(fixed Amount, pct decimal.Decimal) bool
	value   func(fixed Amount, pct decimal.Decimal, fare Amount) Amount
}{
	{
		rule:    IncentiveFixed,
		applies: func(fixed Amount, _ decimal.Decimal) bool { return fixed.IsPositive() },
		value:   func(fixed Amount, _ decimal.Decimal, _ Amount) Amount { return fixed },
	},
	{
		rule:    IncentivePercent,
		applies: func(_ Amount, pct decimal.Decimal) bool { return pct.IsPositive() },
		value: func(_ Amount, pct decimal.Decimal, fare Amount) Amount {
			return NewAmount(fare.Mul(pct).Div(hundred))
		},
	},
}

// ResolveIncentive applies the fixed-beats-percent precedence. The percentage
// is taken over fare, the first fare line's amount.
func ResolveIncentive(fixed Amount, pct decimal.Decimal, fare Amount) (Amount, IncentiveRule) {
	for _, r := range incentiveRules {
		if r.applies(fixed, pct) {
			return r.value(fixed, pct, fare), r.rule
		}
	}
	return ZeroAmount, IncentiveNone
}

func extractFareLines(text string) ([]FareLine, error) {
	fares := []FareLine{}
	for _, m := range fareRe.FindAllStringSubmatch(text, -1) {
		fare, err := NormalizeAmount(m[1])
		if err != nil {
			return nil, fmt.Errorf("fare: %w", err)
		}
		tax, err := NormalizeAmount(m[2])
		if err != nil {
			return nil, fmt.Errorf("fare tax: %w", err)
		}
		fares = append(fares, FareLine{
			Category: CategoryFromSuffix(m[3]),
			Fare:     fare,
			Tax:      tax,
		})
	}
	return fares, nil
}

func firstAmount(re *regexp.Regexp, text, field string) (Amount, error) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ZeroAmount, nil
	}
	a, err := NormalizeAmount(m[1])
	if err != nil {
		return ZeroAmount, fmt.Errorf("%s: %w", field, err)
	}
	return a, nil
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
