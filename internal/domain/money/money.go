// Package money validates amounts against the numeric(12,2) columns prices
// and bids are stored in.
package money

import (
	"artmarket/internal/apperr"

	"github.com/shopspring/decimal"
)

// Limit is the first amount that no longer fits numeric(12,2).
var Limit = decimal.New(1, 10)

// Check rejects amounts that are not positive, carry more than two decimal
// places, or would overflow the column. field names the amount in messages.
func Check(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return apperr.Validation(field + " must be greater than zero")
	}
	if !d.Equal(d.Truncate(2)) {
		return apperr.Validation(field + " must have at most 2 decimal places")
	}
	if d.GreaterThanOrEqual(Limit) {
		return apperr.Validation(field + " is too large")
	}
	return nil
}
