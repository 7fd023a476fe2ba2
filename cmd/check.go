package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jsonapi-tools/wiremap/internal/cmd"
	"github.com/jsonapi-tools/wiremap/internal/lint"
)

type CheckCmd struct {
	*cmd.BaseCmd
}

// NewCheckCmd creates the command that reports structural and schema
// problems in a document without printing its contents.
func NewCheckCmd(logger hclog.Logger) *cobra.Command {
	c := &CheckCmd{
		BaseCmd: &cmd.BaseCmd{},
	}
	c.SetLogger(logger)

	cobraCommand := &cobra.Command{
		Use:   "check <document.json>",
		Short: "Checks a wire document for structural problems and schema mismatches.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	return cobraCommand
}

func (c *CheckCmd) run(cobraCmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document (%s): %w", args[0], err)
	}

	out := cobraCmd.OutOrStdout()

	issues, err := lint.Check(raw)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(out, "  ✗ %s\n", issue)
		}
		return fmt.Errorf("document has %d structural problem(s)", len(issues))
	}

	m, err := c.CreateMapper()
	if err != nil {
		return err
	}

	result, err := m.Decode(raw)
	if err != nil {
		return fmt.Errorf("document does not decode against the schema: %w", err)
	}

	fmt.Fprintf(out, "OK: %d resource(s), %d primary\n", result.Store.Len(), len(result.Primary))

	return nil
}
