// Package currency converts money-like text scraped from the ranking and
// detail pages into fixed-point amounts in the target currency.  The
// exchange rate is an injected constant, never fetched live, which keeps
// Normalize a pure function.
package currency

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrParse indicates that a money cell contained no parseable number after
// stripping symbols and separators.  Callers must substitute an explicit
// "unknown" marker (a nil amount) rather than propagate the value as zero.
var ErrParse = errors.New("unparseable amount")

// Normalize strips every character that is not a digit or a decimal point
// from raw, parses the remainder as a non-negative decimal and multiplies
// it by rate.  "£1,234.50" with rate 0.78 yields 962.91.
func Normalize(raw string, rate decimal.Decimal) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return decimal.Zero, ErrParse
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrParse
	}
	return amount.Mul(rate), nil
}
