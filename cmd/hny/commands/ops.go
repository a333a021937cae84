package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// NewOpsCommand creates the ops command group.
func NewOpsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Inspect the API operation catalog",
		Long:  "List the API operations this client knows about",
	}

	cmd.AddCommand(newOpsListCommand())

	return cmd
}

func newOpsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known API operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := honeycomb.NewOperationRegistry()
			operations := registry.List()

			if handled, err := encodeOutput(operations); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Operation", "Method", "Path")

			for _, op := range operations {
				_ = table.Append(op.Name, op.Method, op.Path)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
