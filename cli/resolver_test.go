package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

type resolverTestCLI struct {
	Width    int    `default:"80"`
	LogLevel string `default:"info" name:"log-level"`
}

// resolveTestFlags runs a kong parse with the given YAML config and
// command-line arguments, returning the resolved flag values.
func resolveTestFlags(
	t *testing.T,
	yamlConfig string,
	args []string,
) resolverTestCLI {
	t.Helper()

	resolver, err := resolveYAML(strings.NewReader(yamlConfig))
	if err != nil {
		t.Fatalf("resolveYAML() error = %v", err)
	}

	var cli resolverTestCLI

	parser, err := kong.New(&cli, kong.Resolvers(resolver))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	return cli
}

func TestResolveYAMLProvidesDefaults(t *testing.T) {
	cli := resolveTestFlags(t, "width: 120\n", nil)

	if cli.Width != 120 {
		t.Errorf("Width = %d, want 120", cli.Width)
	}

	if cli.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q (struct default)", cli.LogLevel, "info")
	}
}

func TestResolveYAMLFlagOverrides(t *testing.T) {
	cli := resolveTestFlags(t, "width: 120\n", []string{"--width=40"})

	if cli.Width != 40 {
		t.Errorf("Width = %d, want flag value 40", cli.Width)
	}
}

func TestResolveYAMLUnderscoreAlias(t *testing.T) {
	// Hyphenated flag names may be written with underscores in the file.
	cli := resolveTestFlags(t, "log_level: debug\n", nil)

	if cli.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cli.LogLevel, "debug")
	}
}

func TestResolveYAMLMalformedConfig(t *testing.T) {
	// A malformed config file behaves like an empty one.
	cli := resolveTestFlags(t, ":\n\t- not yaml", nil)

	if cli.Width != 80 {
		t.Errorf("Width = %d, want struct default 80", cli.Width)
	}
}

func TestResolveYAMLEmptyConfig(t *testing.T) {
	cli := resolveTestFlags(t, "", nil)

	if cli.Width != 80 {
		t.Errorf("Width = %d, want struct default 80", cli.Width)
	}
}
