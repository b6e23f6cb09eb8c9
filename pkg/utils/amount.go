package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount-looking token is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

const amountPlaces = 2

// plainNumeralRe admits sign, digits and one '.'; no exponents or radix prefixes.
var plainNumeralRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Amount is a monetary value held at exactly two fractional digits.
type Amount struct {
	decimal.Decimal
}

// ZeroAmount is 0.00.
var ZeroAmount = Amount{decimal.Zero}

// NewAmount rounds d half-up to two places.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d.Round(amountPlaces)}
}

// MustAmount parses a plain decimal literal and panics on failure. Meant for
// constants and tests.
func MustAmount(s string) Amount {
	a, err := NormalizeAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the amount with exactly two fractional digits.
func (a Amount) String() string {
	return a.StringFixed(amountPlaces)
}

// MarshalJSON encodes the amount as a quoted fixed two-digit string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts quoted or bare numbers in either separator style.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*a = ZeroAmount
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	parsed, err := NormalizeAmount(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ResolveSeparators rewrites a locale-ambiguous numeral into a plain decimal
// literal. When both '.' and ',' occur, whichever comes last is the decimal
// separator and the other is dropped. A lone ',' is a decimal separator.
// A lone '.' (or no separator at all) is left untouched.
func ResolveSeparators(raw string) string {
	s := strings.TrimSpace(raw)
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.ReplaceAll(s, ",", ".")
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		return strings.ReplaceAll(s, ",", ".")
	default:
		return s
	}
}

// NormalizeAmount parses raw with ResolveSeparators and rounds half-up to two
// places.
func NormalizeAmount(raw string) (Amount, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return ZeroAmount, err
	}
	return NewAmount(d), nil
}

// parseDecimal keeps full precision; percentages go through here.
func parseDecimal(raw string) (decimal.Decimal, error) {
	norm := ResolveSeparators(raw)
	if norm == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	if !plainNumeralRe.MatchString(norm) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

// ParseInt converts string to int
func ParseInt(value string) int {
	parsedValue, _ := strconv.Atoi(value)
	return parsedValue
}
