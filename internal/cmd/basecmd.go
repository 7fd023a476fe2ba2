// Package cmd holds shared plumbing for CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jsonapi-tools/wiremap/internal/flags"
	"github.com/jsonapi-tools/wiremap/internal/mapper"
	"github.com/jsonapi-tools/wiremap/internal/schema"
)

// BaseCmd carries the logger shared by all commands.
type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger.
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command, building a fallback
// from flags and environment when none was injected.
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	logLevel := flags.LogLevel
	if logLevel == "" {
		logLevel = strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
		if logLevel == "" {
			logLevel = flags.DefaultLogLevel
		}
	}

	logPath := flags.LogPath
	if logPath == "" {
		logPath = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	var output io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file (%s): %v, discarding logs\n", logPath, err)
		} else {
			output = f
		}
	}

	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "wiremap-default",
		Level:  hclog.LevelFromString(logLevel),
		Output: output,
	})

	return c.logger
}

// CreateMapper loads the schema file configured via flags and wraps the
// resulting registry in a mapper facade.
func (c *BaseCmd) CreateMapper() (*mapper.Mapper, error) {
	loader := &schema.DefaultLoader{}

	registry, err := loader.Load(flags.SchemaFile)
	if err != nil {
		return nil, err
	}

	c.Logger().Debug("Loaded schema", "path", flags.SchemaFile, "types", registry.Len())

	return mapper.NewWithRegistry(c.Logger(), registry), nil
}
