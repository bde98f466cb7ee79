package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"pizzeria/pkg/inventory"
	"pizzeria/pkg/order"
)

// ShopName is printed in the welcome banner.
const ShopName = "hometown pizza"

// Result describes how an ordering session ended.
type Result struct {
	Order *order.Order
	Step  Step
}

// Run drives one customer through naming the order, choosing items and
// finishing or cancelling. Reaching the end of input cancels the order.
// Cancelling ctx ends the session at once, even while waiting for input,
// and Run returns ctx.Err() with a Cancelled step.
func Run(ctx context.Context, in io.Reader, out io.Writer, inv *inventory.Inventory, logger zerolog.Logger) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	input := newLineReader(ctx, in)

	fmt.Fprintf(out, "Welcome to %s!\n", ShopName)
	fmt.Fprint(out, "What is the name for this order: ")
	name, ok, err := input.next(ctx)
	if !ok {
		fmt.Fprintln(out)
		if err != nil && ctx.Err() == nil {
			err = fmt.Errorf("read input: %w", err)
		}
		return Result{Step: Cancelled}, err
	}
	customer := strings.TrimSpace(name)

	fmt.Fprintf(out, "\n%s\n\n\n", inv)

	ord := order.New(customer)
	session := NewSession(inv, ord, out, logger)
	logger.Info().
		Str("order", ord.ID().String()).
		Str("customer", customer).
		Msg("order started")

	step := Continue
	for !step.Terminal() {
		fmt.Fprintln(out, "What would you like? ")
		fmt.Fprintln(out, "If you are done ordering, enter done!")
		fmt.Fprintln(out, "If you want to cancel your order, enter quit")
		fmt.Fprintf(out, "%s: ", customer)

		line, ok, err := input.next(ctx)
		if !ok {
			fmt.Fprintln(out)
			step = Cancelled
			if err != nil {
				finish(out, ord, step)
				logger.Info().
					Err(err).
					Str("order", ord.ID().String()).
					Msg("order interrupted")
				if ctx.Err() != nil {
					return Result{Order: ord, Step: step}, err
				}
				return Result{Order: ord, Step: step}, fmt.Errorf("read input: %w", err)
			}
			break
		}
		step = session.Handle(line)
	}

	finish(out, ord, step)
	logger.Info().
		Str("order", ord.ID().String()).
		Str("outcome", step.String()).
		Int("items", ord.Len()).
		Str("total", ord.Total().StringFixed(2)).
		Msg("order finished")
	return Result{Order: ord, Step: step}, nil
}

func finish(out io.Writer, ord *order.Order, step Step) {
	switch step {
	case Done:
		fmt.Fprintln(out, "\nThank you for your business!")
		fmt.Fprintln(out, "\nHere is your receipt: ")
		fmt.Fprintln(out, ord)
	case Cancelled:
		fmt.Fprintln(out, "\nYour order has been cancelled.")
	}
}
