package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"pizzeria/pkg/catalog"
	"pizzeria/pkg/inventory"
	"pizzeria/pkg/shell"
	"pizzeria/pkg/version"
)

const (
	envCatalog  = "PIZZERIA_CATALOG"
	envLogLevel = "PIZZERIA_LOG_LEVEL"
	envFile     = "PIZZERIA_ENV_FILE"
)

// NewLogger returns the console logger used by the entry points.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("app", "pizzeria").
		Logger()
}

// Run loads configuration, builds the inventory and takes one order from stdin.
// args excludes the program name.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *zerolog.Logger) error {
	if logger == nil {
		// Tests pass nil to stay quiet.
		nop := zerolog.Nop()
		logger = &nop
	}

	if err := loadEnvFile(); err != nil {
		return err
	}

	cmd := &cli.Command{
		Name:    "pizzeria",
		Usage:   "take a pizza order at the counter",
		Version: version.Version(),
		Writer:  stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "TOML menu file; the built-in menu is used when empty",
				Sources: cli.EnvVars(envCatalog),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "trace, debug, info, warn, error or disabled",
				Sources: cli.EnvVars(envLogLevel),
			},
			&cli.BoolFlag{
				Name:  "print-menu",
				Usage: "print the menu and exit",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level, err := zerolog.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log := logger.Level(level)

			inv, err := loadInventory(cmd.String("catalog"), log)
			if err != nil {
				return err
			}
			if cmd.Bool("print-menu") {
				fmt.Fprintln(stdout, inv)
				return nil
			}

			_, err = shell.Run(ctx, stdin, stdout, inv, log)
			if errors.Is(err, context.Canceled) {
				log.Warn().Msg("order interrupted")
				return nil
			}
			if err != nil {
				return fmt.Errorf("ordering session failed: %w", err)
			}
			return nil
		},
	}

	return cmd.Run(ctx, append([]string{cmd.Name}, args...))
}

// loadEnvFile applies PIZZERIA_* settings from a dotenv file when one exists.
// Variables already present in the environment win.
func loadEnvFile() error {
	path := os.Getenv(envFile)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file %s: %w", path, err)
	}
	return nil
}

func loadInventory(path string, logger zerolog.Logger) (*inventory.Inventory, error) {
	cat := catalog.Default()
	if path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return nil, fmt.Errorf("unable to load catalog: %w", err)
		}
		cat = loaded
	}

	inv, err := cat.Inventory()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	logger.Info().
		Str("path", path).
		Int("pizzas", len(inv.Pizzas())).
		Int("sides", len(inv.Sides())).
		Msg("catalog loaded")
	return inv, nil
}
