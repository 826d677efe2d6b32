package command

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/situs/internal/model"
)

// Command is one parsed, validated input line. The set of variants is
// closed; Execute switches over all of them.
type Command interface {
	isCommand()
}

type (
	List struct{}

	Add struct {
		Ingredient model.Ingredient
	}

	Subtract struct {
		Name   string
		Amount decimal.Decimal
	}

	// Delete matches Expiry against the stored dd/mm/yyyy text.
	Delete struct {
		Name   string
		Expiry string
	}

	Update struct {
		Ingredient model.Ingredient
	}

	// Date carries the raw argument; the handler validates it.
	Date struct {
		Value string
	}

	Expire struct {
		Before time.Time
	}

	Find struct {
		Keywords []string
	}

	Alerts struct {
		Kind AlertKind
	}

	// SetThreshold holds either Days or Kg depending on Kind. Raw is the
	// value as typed, echoed back in the confirmation.
	SetThreshold struct {
		Kind ThresholdKind
		Days int64
		Kg   decimal.Decimal
		Raw  string
	}

	Help struct{}

	Exit struct{}

	// Invalid is an unrecognised command word. It is not an error.
	Invalid struct{}
)

func (List) isCommand()         {}
func (Add) isCommand()          {}
func (Subtract) isCommand()     {}
func (Delete) isCommand()       {}
func (Update) isCommand()       {}
func (Date) isCommand()         {}
func (Expire) isCommand()       {}
func (Find) isCommand()         {}
func (Alerts) isCommand()       {}
func (SetThreshold) isCommand() {}
func (Help) isCommand()         {}
func (Exit) isCommand()         {}
func (Invalid) isCommand()      {}

type AlertKind string

const (
	AlertAll    AlertKind = "all"
	AlertExpiry AlertKind = "expiry"
	AlertStock  AlertKind = "stock"
)

type ThresholdKind string

const (
	ThresholdExpiry ThresholdKind = "expiry"
	ThresholdStock  ThresholdKind = "stock"
)

// Mutates reports whether cmd changes the ingredient collection, i.e.
// whether the caller should save afterwards.
func Mutates(cmd Command) bool {
	switch cmd.(type) {
	case Add, Subtract, Delete, Update:
		return true
	}
	return false
}
