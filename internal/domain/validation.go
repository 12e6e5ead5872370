package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a single input transaction may carry.
const MaxAmount = "1000000000000" // 1 trillion

var maxAmount = decimal.RequireFromString(MaxAmount)

// maxAmountExponent is the exponent above which a non-zero amount exceeds MaxAmount.
const maxAmountExponent = 12

// ValidateAmount checks an input amount before it becomes a Balance: it must
// not be negative, must have at most Precision decimal places and must not
// exceed MaxAmount. Exponents are checked before any comparison, so that
// inputs like 1e2000000000 are rejected without being expanded.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	if amount.IsZero() {
		return nil
	}

	exp := amount.Exponent()
	if exp > maxAmountExponent {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	if exp < -Precision {
		// The coefficient needs at least `extra` trailing zeros for the value
		// to fit in Precision places.
		extra := int64(-Precision) - int64(exp)
		if extra >= int64(amount.NumDigits()) || !amount.Equal(amount.Round(Precision)) {
			return fmt.Errorf("%w: at most %d decimal places", ErrAmountTooPrecise, Precision)
		}
	}

	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}
