// Package flags declares the global CLI flags and their environment
// variable fallbacks.
package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarSchemaFile = "WIREMAP_SCHEMA_FILE"
	EnvVarLogPath    = "WIREMAP_LOG_PATH"
	EnvVarLogLevel   = "WIREMAP_LOG_LEVEL"

	// Defaults
	DefaultSchemaFile = ".wiremap.toml"
	DefaultLogPath    = ""
	DefaultLogLevel   = "info"

	// Flag names
	FlagNameSchemaFile = "schema-file"
	FlagNameLogPath    = "log-path"
	FlagNameLogLevel   = "log-level"
)

var (
	SchemaFile string
	LogPath    string
	LogLevel   string
)

// InitFlags binds the global flags onto the given flag set. Values already
// set (by a test, or by a prior binding) are kept; otherwise the environment
// is consulted before falling back to the built-in default.
func InitFlags(fs *pflag.FlagSet) {
	if SchemaFile == "" {
		SchemaFile = envOrDefault(EnvVarSchemaFile, DefaultSchemaFile)
	}
	if LogPath == "" {
		LogPath = envOrDefault(EnvVarLogPath, DefaultLogPath)
	}
	if LogLevel == "" {
		LogLevel = strings.ToLower(envOrDefault(EnvVarLogLevel, DefaultLogLevel))
	}

	fs.StringVar(&SchemaFile, FlagNameSchemaFile, SchemaFile, "path to schema file")
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for wiremap logs")
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
