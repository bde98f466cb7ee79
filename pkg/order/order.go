package order

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria/pkg/menu"
)

// Order is one customer's list of purchased items. Items are shared with the
// inventory and never copied.
type Order struct {
	id       uuid.UUID
	customer string
	items    []menu.Item
}

// New starts an order for customer, optionally pre-filled with items.
func New(customer string, items ...menu.Item) *Order {
	return &Order{
		id:       uuid.New(),
		customer: customer,
		items:    append([]menu.Item(nil), items...),
	}
}

// ID identifies the order in logs.
func (o *Order) ID() uuid.UUID { return o.id }

// Customer returns the name the order was placed under.
func (o *Order) Customer() string { return o.customer }

// Items returns the items in the order they were added.
func (o *Order) Items() []menu.Item {
	return append([]menu.Item(nil), o.items...)
}

// Len returns the number of items in the order.
func (o *Order) Len() int { return len(o.items) }

// AddItem appends item to the end of the order.
func (o *Order) AddItem(item menu.Item) {
	o.items = append(o.items, item)
}

// Total is recomputed from the current items on every call.
func (o *Order) Total() decimal.Decimal {
	return menu.Sum(o.items)
}

// String renders the receipt: customer, total and one line per item.
func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\nTotal: %s\nItems\n----------------", o.customer, menu.FormatPrice(o.Total()))
	for _, item := range o.items {
		b.WriteString("\n")
		b.WriteString(item.String())
	}
	return b.String()
}
