package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jsonapi-tools/wiremap/internal/cmd"
	"github.com/jsonapi-tools/wiremap/internal/flags"
)

var version = "dev" // Set at build time using -ldflags

type RootCmd struct {
	*cmd.BaseCmd
}

// Execute runs the root command.
func Execute() error {
	logger, err := configureLogger()
	if err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	rootCmd := NewRootCmd(logger)

	return rootCmd.Execute()
}

// NewRootCmd builds the root command and wires up its subcommands.
func NewRootCmd(logger hclog.Logger) *cobra.Command {
	c := &RootCmd{
		BaseCmd: &cmd.BaseCmd{},
	}
	c.SetLogger(logger)

	rootCmd := &cobra.Command{
		Use:          "wiremap <command> [args]",
		Short:        "'wiremap' maps JSON:API wire documents to typed resource graphs and back.",
		Long:         c.longDescription(),
		SilenceUsage: true,
		Version:      version,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(NewInitCmd(logger))
	rootCmd.AddCommand(NewInspectCmd(logger))
	rootCmd.AddCommand(NewCheckCmd(logger))

	return rootCmd
}

func (c *RootCmd) longDescription() string {
	return `The 'wiremap' CLI decodes JSON:API-shaped wire documents against a declared
resource schema, prints the resulting resource graph, and checks documents for
structural problems before they reach application code.`
}

func configureLogger() (hclog.Logger, error) {
	logPath := strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))

	// If WIREMAP_LOG_PATH is not set, don't log anywhere.
	logOutput := io.Discard

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		logOutput = f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "wiremap",
		Level:  hclog.LevelFromString(getLogLevel()),
		Output: logOutput,
	})

	return logger, nil
}

func getLogLevel() string {
	lvl := strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return "info"
	}
}
