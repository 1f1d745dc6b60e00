package ironring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// holoCode is the currency code registered in go-money for Holos.
const holoCode = "HOL"

func init() {
	// Holos have no fractional unit and are printed after the amount.
	money.AddCurrency(holoCode, "holos", "1 $", ".", ",", 0)
}

// Holos is an amount of the station credit unit.
type Holos int64

var (
	maxHolos = decimal.NewFromInt(math.MaxInt64)
	minHolos = decimal.NewFromInt(math.MinInt64)
)

// String returns the amount with thousand separators and its unit, e.g.
// "1,200 holos".
func (h Holos) String() string {
	return money.New(int64(h), holoCode).Display()
}

// ParseHolos parses a whole amount of Holos. Fractional or out of range
// amounts are rejected with ErrInvalidAmount.
func ParseHolos(s string) (Holos, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not a whole number of holos", ErrInvalidAmount, s)
	}
	if d.GreaterThan(maxHolos) || d.LessThan(minHolos) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return Holos(d.IntPart()), nil
}

// cost returns price*quantity, or ErrInvalidAmount if it does not fit in
// Holos.
func cost(price Holos, quantity int) (Holos, error) {
	c := decimal.NewFromInt(int64(price)).Mul(decimal.NewFromInt(int64(quantity)))
	if c.GreaterThan(maxHolos) || c.LessThan(minHolos) {
		return 0, fmt.Errorf("%w: %v x %d overflows", ErrInvalidAmount, price, quantity)
	}
	return Holos(c.IntPart()), nil
}

// credit returns balance+amount, or ErrInvalidAmount if it does not fit in
// Holos.
func credit(balance, amount Holos) (Holos, error) {
	c := decimal.NewFromInt(int64(balance)).Add(decimal.NewFromInt(int64(amount)))
	if c.GreaterThan(maxHolos) || c.LessThan(minHolos) {
		return 0, fmt.Errorf("%w: %v + %v overflows", ErrInvalidAmount, balance, amount)
	}
	return Holos(c.IntPart()), nil
}
