package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places balances are rounded to after every
// arithmetic step.
const Precision int32 = 4

// maxExponent bounds the decimal exponent NewBalance accepts in either
// direction, so that rounding to Precision stays cheap.
const maxExponent int32 = 64

// Balance is an exact, non-negative monetary amount. The zero value is a zero balance.
// Balances are immutable: Add and Sub return new values.
type Balance struct {
	value decimal.Decimal
}

// ZeroBalance is a balance of zero.
var ZeroBalance = Balance{}

// NewBalance validates d and wraps it rounded to Precision, so a balance always
// holds exactly the value arithmetic on it will use.
func NewBalance(d decimal.Decimal) (Balance, error) {
	if d.IsNegative() {
		return Balance{}, fmt.Errorf("%w: %s is negative", ErrInvalidBalance, d)
	}
	if d.IsZero() {
		return ZeroBalance, nil
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return Balance{}, fmt.Errorf("%w: exponent %d out of range", ErrInvalidBalance, exp)
	}
	return Balance{value: d.Round(Precision)}, nil
}

// NewBalanceFromString parses s as an exact decimal.
func NewBalanceFromString(s string) (Balance, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidBalance, s)
	}
	return NewBalance(d)
}

// NewBalanceFromFloat converts f, rejecting NaN, infinities and negative values.
func NewBalanceFromFloat(f float64) (Balance, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Balance{}, fmt.Errorf("%w: %v is not finite", ErrInvalidBalance, f)
	}
	if math.Signbit(f) && f != 0 {
		return Balance{}, fmt.Errorf("%w: %v is negative", ErrInvalidBalance, f)
	}
	return NewBalance(decimal.NewFromFloat(f))
}

// MustBalance is like NewBalanceFromString but panics on invalid input.
// Intended for literals.
func MustBalance(s string) Balance {
	b, err := NewBalanceFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Add returns b + other rounded to Precision.
func (b Balance) Add(other Balance) (Balance, error) {
	return NewBalance(b.value.Add(other.value))
}

// Sub returns b - other rounded to Precision. It fails if the result is negative.
func (b Balance) Sub(other Balance) (Balance, error) {
	return NewBalance(b.value.Sub(other.value))
}

// Cmp compares b and other: -1 if b < other, 0 if equal, +1 if b > other.
func (b Balance) Cmp(other Balance) int {
	return b.value.Cmp(other.value)
}

// Equal reports whether b and other have the same numeric value.
func (b Balance) Equal(other Balance) bool {
	return b.value.Equal(other.value)
}

// LessThan reports whether b < other.
func (b Balance) LessThan(other Balance) bool {
	return b.value.LessThan(other.value)
}

// IsZero reports whether b is zero.
func (b Balance) IsZero() bool {
	return b.value.IsZero()
}

// Decimal returns the underlying value.
func (b Balance) Decimal() decimal.Decimal {
	return b.value
}

// String renders b without trailing zeros, e.g. "1.5" or "0".
func (b Balance) String() string {
	return b.value.String()
}
