package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only external date format: dd/mm/yyyy.
const DateLayout = "02/01/2006"

// DefaultUnits is used when a stored record carries no unit.
const DefaultUnits = "kg"

// Separator splits the fields of a stored record. Names and units must not
// contain it.
const Separator = "|"

// Amounts are kept within a range FormatAmount can render in a few digits.
const maxAmountExponent = 18

var maxAmount = decimal.New(1, 15)

var (
	ErrBadAmount = errors.New("amount must be a finite, non-negative number")
	ErrBadDate   = errors.New("date must be in the format dd/mm/yyyy")
)

// Ingredient is one batch of a named item with a single expiry date.
type Ingredient struct {
	Name   string
	Amount decimal.Decimal
	Units  string
	Expiry time.Time
}

// NewIngredient trims the name and falls back to DefaultUnits.
func NewIngredient(name string, amount decimal.Decimal, units string, expiry time.Time) Ingredient {
	units = strings.TrimSpace(units)
	if units == "" {
		units = DefaultUnits
	}
	return Ingredient{
		Name:   strings.TrimSpace(name),
		Amount: amount,
		Units:  units,
		Expiry: expiry,
	}
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s | Amount Left: %s %s | Expiry Date: %s",
		i.Name, FormatAmount(i.Amount), i.Units, FormatDate(i.Expiry))
}

// ParseDate is strict: two-digit day and month, four-digit year, and a real
// calendar date. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ParseAmount accepts decimal and exponent notation. NaN, infinities,
// negative values and anything above 1e15 are rejected, as is an exponent
// beyond ±18.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	// Check the exponent before any arithmetic; comparing 1e300000000
	// would expand it.
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	if d.IsNegative() || d.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	return d, nil
}

// FormatAmount drops trailing zeros: 2.50 renders as 2.5.
func FormatAmount(d decimal.Decimal) string { return d.String() }
