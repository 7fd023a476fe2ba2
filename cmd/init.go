package cmd

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jsonapi-tools/wiremap/internal/cmd"
	"github.com/jsonapi-tools/wiremap/internal/flags"
	"github.com/jsonapi-tools/wiremap/internal/schema"
)

type InitCmd struct {
	*cmd.BaseCmd
	initializer schema.Initializer
}

// NewInitCmd creates the command that writes a skeleton schema file.
func NewInitCmd(logger hclog.Logger) *cobra.Command {
	c := &InitCmd{
		BaseCmd:     &cmd.BaseCmd{},
		initializer: &schema.DefaultLoader{},
	}
	c.SetLogger(logger)

	cobraCommand := &cobra.Command{
		Use:   "init",
		Short: "Creates a skeleton schema file for the current project.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	return cobraCommand
}

func (c *InitCmd) run(cobraCmd *cobra.Command, _ []string) error {
	path := flags.SchemaFile

	if err := c.initializer.Init(path); err != nil {
		return err
	}

	c.Logger().Info("Schema file created", "path", path)
	fmt.Fprintf(cobraCmd.OutOrStdout(), "Created %s\n", path)

	return nil
}
