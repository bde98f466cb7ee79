package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"pizzeria/pkg/inventory"
	"pizzeria/pkg/order"
)

// Session turns free-text input into order changes for a single customer.
type Session struct {
	inv    *inventory.Inventory
	order  *order.Order
	out    io.Writer
	logger zerolog.Logger
}

// NewSession binds an order to the shared inventory. Confirmations are written to out.
func NewSession(inv *inventory.Inventory, ord *order.Order, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		inv:    inv,
		order:  ord,
		out:    out,
		logger: logger.With().Str("order", ord.ID().String()).Logger(),
	}
}

// Order returns the order being built.
func (s *Session) Order() *order.Order { return s.order }

// Handle processes one line. The "done" and "quit" tokens win over any
// catalog entry that happens to share the prefix. Blank lines and names that
// match nothing leave the order untouched.
func (s *Session) Handle(input string) Step {
	choice := strings.TrimSpace(input)
	switch strings.ToLower(choice) {
	case doneToken:
		return Done
	case quitToken:
		return Cancelled
	case "":
		return Continue
	}

	item, ok := s.inv.GetItem(choice)
	if !ok {
		s.logger.Debug().Str("input", choice).Msg("no matching item")
		return Continue
	}
	s.order.AddItem(item)
	s.logger.Debug().
		Str("item", item.Name()).
		Str("total", s.order.Total().StringFixed(2)).
		Msg("item added")
	fmt.Fprintf(s.out, "Ok, 1 %s added to your order\n", item.Name())
	return Continue
}
