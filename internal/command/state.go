package command

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/situs/internal/model"
)

const (
	DefaultExpiryThresholdDays = 3
	DefaultLowStockThresholdKg = 1

	// MaxExpiryThresholdDays keeps the alert cutoff a real calendar date.
	MaxExpiryThresholdDays = 36500
)

// State is everything a command can read or change during a session.
type State struct {
	Inventory *model.Inventory

	// Today is the session date used by the alerts; the date command moves it.
	Today time.Time

	ExpiryThresholdDays int64
	LowStockThresholdKg decimal.Decimal
}

// NewState truncates today to a calendar date in UTC so it compares cleanly
// with parsed expiry dates.
func NewState(items []model.Ingredient, today time.Time, expiryDays int64, lowStockKg decimal.Decimal) *State {
	y, m, d := today.Date()
	return &State{
		Inventory:           model.NewInventory(items),
		Today:               time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		ExpiryThresholdDays: expiryDays,
		LowStockThresholdKg: lowStockKg,
	}
}
