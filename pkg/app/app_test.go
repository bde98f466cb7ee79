package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/pkg/catalog"
)

const smallMenu = `
[[pizzas]]
name = "Veggie"

  [[pizzas.toppings]]
  name = "peppers"
  price = "0.40"

[[sides]]
name = "Garlic Knots"
price = "3.25"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	t.Setenv(envFile, filepath.Join(t.TempDir(), "missing.env"))
	var out bytes.Buffer
	err := Run(context.Background(), args, strings.NewReader(stdin), &out, nil)
	return out.String(), err
}

func TestRunPrintMenu(t *testing.T) {
	out, err := run(t, []string{"--print-menu"}, "")
	require.NoError(t, err)

	inv, err := catalog.Default().Inventory()
	require.NoError(t, err)
	assert.Equal(t, inv.String()+"\n", out)
}

func TestRunTakesOrder(t *testing.T) {
	out, err := run(t, nil, "Ann\npep\n2l\nravioli\ndone\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Ok, 1 Pepperoni added to your order")
	assert.Contains(t, out, "Ok, 1 2L Coke added to your order")
	assert.Contains(t, out, "Customer: Ann\nTotal: $9.25\n")
}

func TestRunCatalogFlag(t *testing.T) {
	path := writeFile(t, "menu.toml", smallMenu)

	out, err := run(t, []string{"--catalog", path, "--print-menu"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Pizzas:\nVeggie Pizza ($7.40)\n    peppers ($0.40)\nSides:\nSide: Garlic Knots ($3.25)\n", out)
}

func TestRunCatalogFromEnv(t *testing.T) {
	t.Setenv(envCatalog, writeFile(t, "menu.toml", smallMenu))

	out, err := run(t, nil, "Cy\ngarlic\nveg\ndone\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: $10.65")
}

func TestRunCatalogFromEnvFile(t *testing.T) {
	menuPath := writeFile(t, "menu.toml", smallMenu)
	envPath := writeFile(t, "pizzeria.env", envCatalog+"="+menuPath+"\n")

	prev, had := os.LookupEnv(envCatalog)
	require.NoError(t, os.Unsetenv(envCatalog))
	t.Cleanup(func() {
		if had {
			os.Setenv(envCatalog, prev)
		} else {
			os.Unsetenv(envCatalog)
		}
	})
	t.Setenv(envFile, envPath)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), []string{"--print-menu"}, strings.NewReader(""), &out, nil))
	assert.Contains(t, out.String(), "Veggie Pizza ($7.40)")
}

func TestRunInvalidCatalog(t *testing.T) {
	path := writeFile(t, "menu.toml", "[[sides]]\nname = \"Refund\"\nprice = \"-5\"\n")

	_, err := run(t, []string{"--catalog", path}, "")
	require.Error(t, err)
	assert.True(t, catalog.IsValidation(err))
}

func TestRunMissingCatalog(t *testing.T) {
	_, err := run(t, []string{"--catalog", filepath.Join(t.TempDir(), "nope.toml")}, "")
	require.Error(t, err)
	assert.False(t, catalog.IsValidation(err))
}

func TestRunInvalidLogLevel(t *testing.T) {
	_, err := run(t, []string{"--log-level", "loud", "--print-menu"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRunVersion(t *testing.T) {
	out, err := run(t, []string{"--version"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "pizzeria version dev")
}

func TestRunUnknownFlag(t *testing.T) {
	_, err := run(t, []string{"--delivery"}, "")
	assert.Error(t, err)
}

func TestRunInterrupted(t *testing.T) {
	t.Setenv(envFile, filepath.Join(t.TempDir(), "missing.env"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, nil, strings.NewReader("Ann\npep\ndone\n"), &out, nil)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "receipt")
}
