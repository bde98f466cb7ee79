package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pizzeria/pkg/app"
)

// main lets the shop run the tool straight from a checkout with `go run pizzeria.go`.
func main() {
	logger := app.NewLogger(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt kills the process the usual way.
		<-ctx.Done()
		stop()
	}()
	if err := app.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, &logger); err != nil {
		logger.Fatal().Err(err).Msg("pizzeria stopped with error")
	}
}
