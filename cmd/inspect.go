package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jsonapi-tools/wiremap/internal/cmd"
	"github.com/jsonapi-tools/wiremap/internal/printer"
)

type InspectCmd struct {
	*cmd.BaseCmd
	ShowLinkage bool
	ShowDirty   bool
}

// NewInspectCmd creates the command that decodes a document and prints the
// resulting resource graph.
func NewInspectCmd(logger hclog.Logger) *cobra.Command {
	c := &InspectCmd{
		BaseCmd: &cmd.BaseCmd{},
	}
	c.SetLogger(logger)

	cobraCommand := &cobra.Command{
		Use:   "inspect <document.json>",
		Short: "Decodes a wire document against the schema and prints the resource graph.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().BoolVar(
		&c.ShowLinkage,
		"linkage",
		true,
		"Print relationship linkage for each resource",
	)

	cobraCommand.Flags().BoolVar(
		&c.ShowDirty,
		"dirty",
		false,
		"Mark dirty attributes",
	)

	return cobraCommand
}

func (c *InspectCmd) run(cobraCmd *cobra.Command, args []string) error {
	m, err := c.CreateMapper()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document (%s): %w", args[0], err)
	}

	result, err := m.Decode(raw)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	out := cobraCmd.OutOrStdout()
	p, err := printer.NewPrinter(out,
		printer.WithLinkage(c.ShowLinkage),
		printer.WithDirtyMarkers(c.ShowDirty),
		printer.WithSeparator(true),
	)
	if err != nil {
		return err
	}

	for _, r := range result.Store.All() {
		if err := p.PrintResource(r); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%d resource(s), %d primary, shape=%s\n",
		result.Store.Len(), len(result.Primary), result.Shape)

	if pg := result.Pagination; !pg.IsZero() {
		if pg.Prev != "" {
			fmt.Fprintf(out, "prev: %s\n", pg.Prev)
		}
		if pg.Next != "" {
			fmt.Fprintf(out, "next: %s\n", pg.Next)
		}
	}

	return nil
}
