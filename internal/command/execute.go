package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/situs/internal/model"
)

// Execute runs cmd against st and returns the text to display. Input
// problems come back as the sentinel errors in errors.go.
func Execute(st *State, cmd Command) (string, error) {
	switch c := cmd.(type) {
	case List:
		return runList(st), nil
	case Add:
		return runAdd(st, c), nil
	case Subtract:
		return runSubtract(st, c), nil
	case Delete:
		return runDelete(st, c), nil
	case Update:
		msg := runUpdate(st, c)
		if msg == "" {
			msg = NotFoundMessage
		}
		return msg, nil
	case Date:
		return runDate(st, c)
	case Expire:
		return runExpire(st, c), nil
	case Find:
		return runFind(st, c), nil
	case Alerts:
		return runAlerts(st, c)
	case SetThreshold:
		return runSetThreshold(st, c)
	case Help:
		return HelpText, nil
	case Exit:
		return "", nil
	case Invalid:
		return InvalidCommandMessage, nil
	}
	return "", fmt.Errorf("unhandled command %T", cmd)
}

const HelpText = `Here are the commands you can use:
  list                                      show every ingredient
  add n/<name> a/<amount> e/<dd/mm/yyyy>    add an ingredient
  subtract n/<name> a/<amount>              use up some of an ingredient
  delete n/<name> e/<dd/mm/yyyy>            remove one batch of an ingredient
  update n/<name> a/<amount> e/<dd/mm/yyyy> change amount and expiry
  find <keyword> [<keyword> ...]            search ingredients by name
  expire <dd/mm/yyyy>                       ingredients expiring by a date
  date [<dd/mm/yyyy>]                       show or change the session date
  alerts all|expiry|stock                   show alerts
  set expiry <days>                         expiry alert threshold in days
  set stock <kg>                            low stock threshold in kg
  help                                      show this message
  exit                                      save and quit`

func runList(st *State) string {
	items := st.Inventory.Items()
	if len(items) == 0 {
		return "The ingredient list is empty!"
	}
	return "Here is the list of all ingredients in your inventory:\n" + numbered(items)
}

func runAdd(st *State, c Add) string {
	merged := st.Inventory.Add(c.Ingredient)
	head := "Got it. This ingredient has been added to the inventory:"
	if merged {
		head = "Got it. Added to an existing batch in the inventory:"
	}
	return fmt.Sprintf("%s\n\t%s\nCurrent inventory has %d item(s).",
		head, c.Ingredient, st.Inventory.Len())
}

func runSubtract(st *State, c Subtract) string {
	left, err := st.Inventory.Subtract(c.Name, c.Amount)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return NotFoundMessage
	case errors.Is(err, model.ErrInsufficient):
		return fmt.Sprintf("There is not enough %s to subtract %s! Only %s left.",
			c.Name, model.FormatAmount(c.Amount), model.FormatAmount(left))
	}
	return fmt.Sprintf("Subtracted %s of %s. %s left in total.",
		model.FormatAmount(c.Amount), c.Name, model.FormatAmount(left))
}

func runDelete(st *State, c Delete) string {
	removed, err := st.Inventory.Delete(c.Name, c.Expiry)
	if err != nil {
		return NotFoundMessage
	}
	return fmt.Sprintf("Got it. This ingredient has been removed from the inventory:\n\t%s", removed)
}

// runUpdate returns "" when nothing matched.
func runUpdate(st *State, c Update) string {
	updated, ok := st.Inventory.Update(c.Ingredient)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Ingredient updated:\n\t%s", updated)
}

func runDate(st *State, c Date) (string, error) {
	if strings.TrimSpace(c.Value) == "" {
		return "Current session date: " + model.FormatDate(st.Today), nil
	}
	d, err := model.ParseDate(c.Value)
	if err != nil {
		return "", ErrDateFormat
	}
	st.Today = d
	return "Current session date changed to " + model.FormatDate(d), nil
}

func runExpire(st *State, c Expire) string {
	items := st.Inventory.ExpiringBy(c.Before)
	date := model.FormatDate(c.Before)
	if len(items) == 0 {
		return "No ingredients expire by " + date + "."
	}
	return "Here are the ingredients that expire by " + date + ":\n" + numbered(items)
}

func runFind(st *State, c Find) string {
	out := make([]string, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		found := st.Inventory.Find(kw)
		if len(found) == 0 {
			out = append(out, fmt.Sprintf("No ingredients matching %q found.", kw))
			continue
		}
		out = append(out, fmt.Sprintf("Ingredients matching %q:\n%s", kw, numbered(found)))
	}
	return strings.Join(out, "\n")
}

func runAlerts(st *State, c Alerts) (string, error) {
	switch c.Kind {
	case AlertExpiry:
		return expiryAlerts(st), nil
	case AlertStock:
		return stockAlerts(st), nil
	case AlertAll:
		return expiryAlerts(st) + "\n" + stockAlerts(st), nil
	}
	return "", ErrAlertType
}

func expiryAlerts(st *State) string {
	by := st.Today.AddDate(0, 0, int(st.ExpiryThresholdDays))
	items := st.Inventory.ExpiringBy(by)
	if len(items) == 0 {
		return fmt.Sprintf("No ingredients expire within %d days.", st.ExpiryThresholdDays)
	}
	return fmt.Sprintf("Ingredients expiring within %d days:\n%s", st.ExpiryThresholdDays, numbered(items))
}

func stockAlerts(st *State) string {
	kg := model.FormatAmount(st.LowStockThresholdKg)
	items := st.Inventory.LowStock(st.LowStockThresholdKg)
	if len(items) == 0 {
		return "No ingredients below " + kg + " kg."
	}
	return "Ingredients below " + kg + " kg:\n" + numbered(items)
}

func runSetThreshold(st *State, c SetThreshold) (string, error) {
	switch c.Kind {
	case ThresholdExpiry:
		st.ExpiryThresholdDays = c.Days
		return "Successfully set expiry threshold to " + c.Raw + " days", nil
	case ThresholdStock:
		st.LowStockThresholdKg = c.Kg
		return "Successfully set low stock threshold to " + c.Raw + " kg", nil
	}
	return "", ErrInvalidInput
}

func numbered(items []model.Ingredient) string {
	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("\t%d. %s", i+1, it))
	}
	return strings.Join(lines, "\n")
}
