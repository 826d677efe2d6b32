package model

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("ingredient not found")
	ErrInsufficient = errors.New("not enough of the ingredient")
)

// Inventory keeps batches in insertion order; save and list preserve it.
// A batch is keyed by (name, expiry), names compared case-insensitively.
type Inventory struct {
	items   []Ingredient
	version uint64
}

func NewInventory(items []Ingredient) *Inventory {
	inv := &Inventory{items: make([]Ingredient, 0, len(items))}
	inv.items = append(inv.items, items...)
	return inv
}

// Items returns a copy.
func (inv *Inventory) Items() []Ingredient {
	out := make([]Ingredient, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Len() int { return len(inv.items) }

// Version increases on every successful change, so callers can tell whether
// a command touched the collection.
func (inv *Inventory) Version() uint64 { return inv.version }

// Add merges into an existing batch with the same name and expiry, or
// appends. It reports whether a merge happened.
func (inv *Inventory) Add(ing Ingredient) (merged bool) {
	for i := range inv.items {
		if sameName(inv.items[i].Name, ing.Name) && inv.items[i].Expiry.Equal(ing.Expiry) {
			inv.items[i].Amount = inv.items[i].Amount.Add(ing.Amount)
			inv.version++
			return true
		}
	}
	inv.items = append(inv.items, ing)
	inv.version++
	return false
}

// Total sums every batch with the given name.
func (inv *Inventory) Total(name string) (decimal.Decimal, bool) {
	total := decimal.Zero
	found := false
	for _, it := range inv.items {
		if sameName(it.Name, name) {
			total = total.Add(it.Amount)
			found = true
		}
	}
	return total, found
}

// Subtract takes amount from the batches of name, earliest expiry first, and
// drops batches that reach zero. On error the inventory is unchanged.
func (inv *Inventory) Subtract(name string, amount decimal.Decimal) (remaining decimal.Decimal, err error) {
	total, found := inv.Total(name)
	if !found {
		return decimal.Zero, ErrNotFound
	}
	if total.LessThan(amount) {
		return total, ErrInsufficient
	}

	idx := make([]int, 0)
	for i, it := range inv.items {
		if sameName(it.Name, name) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return inv.items[idx[a]].Expiry.Before(inv.items[idx[b]].Expiry)
	})

	left := amount
	for _, i := range idx {
		if !left.IsPositive() {
			break
		}
		take := decimal.Min(left, inv.items[i].Amount)
		inv.items[i].Amount = inv.items[i].Amount.Sub(take)
		left = left.Sub(take)
	}

	kept := inv.items[:0]
	for _, it := range inv.items {
		if sameName(it.Name, name) && it.Amount.IsZero() {
			continue
		}
		kept = append(kept, it)
	}
	inv.items = kept
	inv.version++
	return total.Sub(amount), nil
}

// Delete removes the first batch matching name whose formatted expiry equals
// expiry exactly.
func (inv *Inventory) Delete(name, expiry string) (Ingredient, error) {
	for i, it := range inv.items {
		if sameName(it.Name, name) && FormatDate(it.Expiry) == strings.TrimSpace(expiry) {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			inv.version++
			return it, nil
		}
	}
	return Ingredient{}, ErrNotFound
}

// Update replaces amount and expiry of the first batch with the same name.
// Units of the stored batch are kept.
func (inv *Inventory) Update(ing Ingredient) (Ingredient, bool) {
	for i := range inv.items {
		if sameName(inv.items[i].Name, ing.Name) {
			inv.items[i].Amount = ing.Amount
			inv.items[i].Expiry = ing.Expiry
			inv.version++
			return inv.items[i], true
		}
	}
	return Ingredient{}, false
}

func (inv *Inventory) Find(keyword string) []Ingredient {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	return inv.filter(func(it Ingredient) bool {
		return strings.Contains(strings.ToLower(it.Name), keyword)
	})
}

// ExpiringBy is inclusive of date.
func (inv *Inventory) ExpiringBy(date time.Time) []Ingredient {
	return inv.filter(func(it Ingredient) bool { return !it.Expiry.After(date) })
}

// LowStock lists batches strictly below threshold.
func (inv *Inventory) LowStock(threshold decimal.Decimal) []Ingredient {
	return inv.filter(func(it Ingredient) bool { return it.Amount.LessThan(threshold) })
}

func (inv *Inventory) filter(keep func(Ingredient) bool) []Ingredient {
	var out []Ingredient
	for _, it := range inv.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
