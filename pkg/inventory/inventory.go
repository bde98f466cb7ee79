package inventory

import (
	"strings"

	"pizzeria/pkg/menu"
)

// Inventory is the shop's catalog of pizzas and sides. It is never mutated
// after New, so one value can serve any number of sessions.
type Inventory struct {
	pizzas []*menu.Pizza
	sides  []*menu.Side
}

// New copies both lists so later changes by the caller are not observed.
func New(pizzas []*menu.Pizza, sides []*menu.Side) *Inventory {
	return &Inventory{
		pizzas: append([]*menu.Pizza(nil), pizzas...),
		sides:  append([]*menu.Side(nil), sides...),
	}
}

// Pizzas returns the pizzas in catalog order.
func (inv *Inventory) Pizzas() []*menu.Pizza {
	return append([]*menu.Pizza(nil), inv.pizzas...)
}

// Sides returns the sides in catalog order.
func (inv *Inventory) Sides() []*menu.Side {
	return append([]*menu.Side(nil), inv.sides...)
}

// GetItem returns the first pizza, then side, whose name matches.
func (inv *Inventory) GetItem(name string) (menu.Item, bool) {
	for _, p := range inv.pizzas {
		if p.MatchesName(name) {
			return p, true
		}
	}
	for _, s := range inv.sides {
		if s.MatchesName(name) {
			return s, true
		}
	}
	return nil, false
}

// InStock reports whether GetItem would find something for name.
func (inv *Inventory) InStock(name string) bool {
	_, ok := inv.GetItem(name)
	return ok
}

// String renders the menu, pizzas first.
func (inv *Inventory) String() string {
	pizzas := make([]string, 0, len(inv.pizzas))
	for _, p := range inv.pizzas {
		pizzas = append(pizzas, p.String())
	}
	sides := make([]string, 0, len(inv.sides))
	for _, s := range inv.sides {
		sides = append(sides, s.String())
	}
	return "Pizzas:\n" + strings.Join(pizzas, "\n") + "\nSides:\n" + strings.Join(sides, "\n")
}
