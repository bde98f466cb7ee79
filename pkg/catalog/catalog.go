package catalog

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"pizzeria/pkg/inventory"
	"pizzeria/pkg/menu"
)

// ToppingSpec is one topping line of a pizza definition. Price holds
// either a decimal string ("0.75", "$0.75") or a TOML number (0.75).
type ToppingSpec struct {
	Name  string `toml:"name"`
	Price any    `toml:"price"`
}

// PizzaSpec defines a pizza by name and toppings; the base price is fixed.
type PizzaSpec struct {
	Name     string        `toml:"name"`
	Toppings []ToppingSpec `toml:"toppings"`
}

// SideSpec defines a side item. Price takes the same forms as in ToppingSpec.
type SideSpec struct {
	Name  string `toml:"name"`
	Price any    `toml:"price"`
}

// Catalog is the menu definition handed to the inventory at startup.
type Catalog struct {
	Pizzas []PizzaSpec `toml:"pizzas"`
	Sides  []SideSpec  `toml:"sides"`
}

// Default is the shop's standard menu.
func Default() Catalog {
	return Catalog{
		Pizzas: []PizzaSpec{
			{Name: "Pepperoni", Toppings: []ToppingSpec{{Name: "pepperoni", Price: "0.75"}}},
			{Name: "Cheese", Toppings: []ToppingSpec{{Name: "cheese", Price: "0.50"}}},
			{Name: "Hawaiian", Toppings: []ToppingSpec{
				{Name: "Ham", Price: "1.00"},
				{Name: "Pineapple", Price: "0.75"},
			}},
			{Name: "Meat Lovers", Toppings: []ToppingSpec{
				{Name: "bacon", Price: "0.50"},
				{Name: "ham", Price: "0.25"},
				{Name: "sausage", Price: "0.25"},
			}},
		},
		Sides: []SideSpec{
			{Name: "Breadsticks", Price: "2.00"},
			{Name: "2L Coke", Price: "1.50"},
		},
	}
}

// Load reads a TOML catalog from path. Unknown keys are rejected.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) (Catalog, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return cat, nil
}

// Validate checks names and prices without building anything.
func (c Catalog) Validate() error {
	_, err := c.build()
	return err
}

// Inventory validates the catalog and builds the inventory from it.
func (c Catalog) Inventory() (*inventory.Inventory, error) {
	return c.build()
}

func (c Catalog) build() (*inventory.Inventory, error) {
	if len(c.Pizzas) == 0 && len(c.Sides) == 0 {
		return nil, newValidationError("catalog has no pizzas and no sides")
	}

	pizzas := make([]*menu.Pizza, 0, len(c.Pizzas))
	for i, p := range c.Pizzas {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, newValidationError(fmt.Sprintf("pizza #%d: name is required", i+1))
		}
		toppings := make([]menu.Topping, 0, len(p.Toppings))
		for _, t := range p.Toppings {
			tname := strings.TrimSpace(t.Name)
			if tname == "" {
				return nil, newValidationError(fmt.Sprintf("pizza %q: topping name is required", name))
			}
			price, err := parsePrice(t.Price)
			if err != nil {
				return nil, newValidationError(fmt.Sprintf("pizza %q topping %q: %v", name, tname, err))
			}
			toppings = append(toppings, menu.NewTopping(tname, price))
		}
		pizzas = append(pizzas, menu.NewPizza(name, toppings...))
	}

	sides := make([]*menu.Side, 0, len(c.Sides))
	for i, s := range c.Sides {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, newValidationError(fmt.Sprintf("side #%d: name is required", i+1))
		}
		price, err := parsePrice(s.Price)
		if err != nil {
			return nil, newValidationError(fmt.Sprintf("side %q: %v", name, err))
		}
		sides = append(sides, menu.NewSide(name, price))
	}

	return inventory.New(pizzas, sides), nil
}

func parsePrice(raw any) (decimal.Decimal, error) {
	var price decimal.Decimal
	switch v := raw.(type) {
	case nil:
		return decimal.Decimal{}, fmt.Errorf("price is required")
	case string:
		v = strings.TrimPrefix(strings.TrimSpace(v), "$")
		if v == "" {
			return decimal.Decimal{}, fmt.Errorf("price is required")
		}
		p, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid price %q", v)
		}
		price = p
	case int64:
		price = decimal.NewFromInt(v)
	case int:
		price = decimal.NewFromInt(int64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, fmt.Errorf("invalid price %v", v)
		}
		// NewFromFloat keeps the shortest representation, so 0.75 stays 0.75.
		price = decimal.NewFromFloat(v)
	case decimal.Decimal:
		price = v
	default:
		return decimal.Decimal{}, fmt.Errorf("invalid price %v", raw)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("price %s is negative", price)
	}
	return price, nil
}
