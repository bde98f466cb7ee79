package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BasePrice is charged for every pizza before toppings.
var BasePrice = decimal.RequireFromString("7.00")

// Priced is anything on the menu that has a name and a price.
type Priced interface {
	Name() string
	Price() decimal.Decimal
}

// Item is a priced entry a customer can order directly.
type Item interface {
	Priced
	fmt.Stringer
	MatchesName(query string) bool
}

// Topping is a priced modifier attached to a pizza.
type Topping struct {
	name  string
	price decimal.Decimal
}

// NewTopping builds a topping; any name and price are accepted.
func NewTopping(name string, price decimal.Decimal) Topping {
	return Topping{name: name, price: price}
}

// Name returns the topping name as given.
func (t Topping) Name() string { return t.name }

// Price returns what the topping adds to a pizza.
func (t Topping) Price() decimal.Decimal { return t.price }

// String renders "<name> ($<price>)".
func (t Topping) String() string {
	return fmt.Sprintf("%s (%s)", t.name, FormatPrice(t.price))
}

// Side is a standalone item such as breadsticks or a drink.
type Side struct {
	name  string
	price decimal.Decimal
}

// NewSide builds a side item.
func NewSide(name string, price decimal.Decimal) *Side {
	return &Side{name: name, price: price}
}

// Name returns the side's display name.
func (s *Side) Name() string { return s.name }

// Price returns the side's price.
func (s *Side) Price() decimal.Decimal { return s.price }

// MatchesName reports whether query is a case-insensitive prefix of the side's name.
func (s *Side) MatchesName(query string) bool {
	return MatchName(s.name, "", query)
}

// String renders "Side: <name> ($<price>)".
func (s *Side) String() string {
	return fmt.Sprintf("Side: %s (%s)", s.name, FormatPrice(s.price))
}

// Pizza is a base pizza plus an ordered list of toppings.
type Pizza struct {
	name     string
	toppings []Topping
}

// NewPizza builds a pizza; the toppings slice is copied.
func NewPizza(name string, toppings ...Topping) *Pizza {
	return &Pizza{name: name, toppings: append([]Topping(nil), toppings...)}
}

// Name returns the pizza name without the " Pizza" suffix.
func (p *Pizza) Name() string { return p.name }

// Toppings returns the toppings in the order they were given.
func (p *Pizza) Toppings() []Topping {
	return append([]Topping(nil), p.toppings...)
}

// Price is the base price plus every topping.
func (p *Pizza) Price() decimal.Decimal {
	return BasePrice.Add(Sum(p.toppings))
}

// MatchesName accepts any prefix of "<name> pizza", ignoring case.
func (p *Pizza) MatchesName(query string) bool {
	return MatchName(p.name, " pizza", query)
}

// String renders the pizza line followed by one indented line per topping.
func (p *Pizza) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Pizza (%s)", p.name, FormatPrice(p.Price()))
	for _, t := range p.toppings {
		b.WriteString("\n    ")
		b.WriteString(t.String())
	}
	return b.String()
}

var (
	_ Priced = Topping{}
	_ Item   = (*Side)(nil)
	_ Item   = (*Pizza)(nil)
)
