package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// NewColumnsCommand creates the columns command group.
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "columns",
		Aliases: []string{"column", "cols"},
		Short:   "Manage dataset columns",
		Long:    "List, inspect, create, and delete columns of a dataset",
	}

	cmd.AddCommand(newColumnsListCommand())
	cmd.AddCommand(newColumnsGetCommand())
	cmd.AddCommand(newColumnsCreateCommand())
	cmd.AddCommand(newColumnsDeleteCommand())

	return cmd
}

func newColumnsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [DATASET]",
		Short: "List columns of a dataset",
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

			columns, err := client.Columns().List(context.Background(), dataset)
			if err != nil {
				return fmt.Errorf("listing columns: %w", err)
			}

			if handled, err := encodeOutput(columns); handled {
				return err
			}

			if len(columns) == 0 {
				fmt.Println("No columns found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key Name", "Type", "Hidden", "Last Written")

			for _, col := range columns {
				_ = table.Append(col.KeyName, col.Type, yesNo(col.Hidden), formatTime(col.LastWrittenAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newColumnsGetCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "get KEY_NAME",
		Short: "Show a column by key name",
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

			column, err := client.Columns().GetByKeyName(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("getting column: %w", err)
			}

			if handled, err := encodeOutput(column); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", column.ID)
			_ = table.Append("Key Name", column.KeyName)
			_ = table.Append("Type", column.Type)
			_ = table.Append("Description", column.Description)
			_ = table.Append("Hidden", yesNo(column.Hidden))
			_ = table.Append("Created", formatTime(column.CreatedAt))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}

func newColumnsCreateCommand() *cobra.Command {
	var dataset, colType, description string

	var hidden bool

	cmd := &cobra.Command{
		Use:   "create KEY_NAME",
		Short: "Create a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrColumnRequired
			}

			ds, err := resolveDatasetFlag(dataset)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			column, err := client.Columns().Create(context.Background(), ds, &honeycomb.ColumnCreateRequest{
				KeyName:     args[0],
				Type:        colType,
				Description: description,
				Hidden:      hidden,
			})
			if err != nil {
				return fmt.Errorf("creating column: %w", err)
			}

			if handled, err := encodeOutput(column); handled {
				return err
			}

			fmt.Printf("Created column '%s' (id: %s)\n", column.KeyName, column.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")
	cmd.Flags().StringVar(&colType, "type", "", "column type (string, integer, float, boolean)")
	cmd.Flags().StringVar(&description, "description", "", "column description")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "hide the column in the query builder")

	return cmd
}

func newColumnsDeleteCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a column",
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

			err = client.Columns().Delete(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("deleting column: %w", err)
			}

			fmt.Printf("Deleted column '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}

// resolveDatasetFlag prefers a local --dataset flag over the global one.
func resolveDatasetFlag(local string) (string, error) {
	if local != "" {
		return local, nil
	}

	return requireDataset(nil)
}
