package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// NewDerivedColumnsCommand creates the derived-columns command group.
func NewDerivedColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "derived-columns",
		Aliases: []string{"derived-column", "dc"},
		Short:   "Manage derived columns",
		Long:    "List, create, and delete derived columns (calculated fields)",
	}

	cmd.AddCommand(newDerivedColumnsListCommand())
	cmd.AddCommand(newDerivedColumnsCreateCommand())
	cmd.AddCommand(newDerivedColumnsDeleteCommand())

	return cmd
}

func newDerivedColumnsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [DATASET]",
		Short: "List derived columns of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := requireDataset(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			columns, err := client.DerivedColumns().List(context.Background(), dataset)
			if err != nil {
				return fmt.Errorf("listing derived columns: %w", err)
			}

			if handled, err := encodeOutput(columns); handled {
				return err
			}

			if len(columns) == 0 {
				fmt.Println("No derived columns found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Alias", "Expression", "Description")

			for _, col := range columns {
				_ = table.Append(col.Alias, col.Expression, col.Description)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newDerivedColumnsCreateCommand() *cobra.Command {
	var dataset, expression, description string

	cmd := &cobra.Command{
		Use:   "create ALIAS",
		Short: "Create a derived column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := resolveDatasetFlag(dataset)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			column, err := client.DerivedColumns().Create(context.Background(), ds, &honeycomb.DerivedColumnRequest{
				Alias:       args[0],
				Expression:  expression,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("creating derived column: %w", err)
			}

			if handled, err := encodeOutput(column); handled {
				return err
			}

			fmt.Printf("Created derived column '%s' (id: %s)\n", column.Alias, column.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")
	cmd.Flags().StringVar(&expression, "expression", "", "derived column expression")
	cmd.Flags().StringVar(&description, "description", "", "derived column description")
	_ = cmd.MarkFlagRequired("expression")

	return cmd
}

func newDerivedColumnsDeleteCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a derived column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := resolveDatasetFlag(dataset)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DerivedColumns().Delete(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("deleting derived column: %w", err)
			}

			fmt.Printf("Deleted derived column '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}
