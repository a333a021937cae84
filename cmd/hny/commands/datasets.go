package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// NewDatasetsCommand creates the datasets command group.
func NewDatasetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datasets",
		Aliases: []string{"dataset", "ds"},
		Short:   "Manage datasets",
		Long:    "List, inspect, create, update, and delete datasets",
	}

	cmd.AddCommand(newDatasetsListCommand())
	cmd.AddCommand(newDatasetsGetCommand())
	cmd.AddCommand(newDatasetsCreateCommand())
	cmd.AddCommand(newDatasetsDeleteCommand())

	return cmd
}

func newDatasetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			datasets, err := client.Datasets().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing datasets: %w", err)
			}

			if handled, err := encodeOutput(datasets); handled {
				return err
			}

			if len(datasets) == 0 {
				fmt.Println("No datasets found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Slug", "Columns", "Last Written")

			for _, ds := range datasets {
				_ = table.Append(ds.Name, ds.Slug, strconv.Itoa(ds.RegularColumns), formatTime(ds.LastWrittenAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newDatasetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SLUG",
		Short: "Show a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, err := requireDataset(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			dataset, err := client.Datasets().Get(context.Background(), slug)
			if err != nil {
				return fmt.Errorf("getting dataset: %w", err)
			}

			if handled, err := encodeOutput(dataset); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", dataset.Name)
			_ = table.Append("Slug", dataset.Slug)
			_ = table.Append("Description", dataset.Description)
			_ = table.Append("Columns", strconv.Itoa(dataset.RegularColumns))
			_ = table.Append("Created", formatTime(dataset.CreatedAt))
			_ = table.Append("Last Written", formatTime(dataset.LastWrittenAt))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newDatasetsCreateCommand() *cobra.Command {
	var description string

	var expandJSONDepth int

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			dataset, err := client.Datasets().Create(context.Background(), &honeycomb.DatasetCreateRequest{
				Name:            args[0],
				Description:     description,
				ExpandJSONDepth: expandJSONDepth,
			})
			if err != nil {
				return fmt.Errorf("creating dataset: %w", err)
			}

			if handled, err := encodeOutput(dataset); handled {
				return err
			}

			fmt.Printf("Created dataset '%s' (slug: %s)\n", dataset.Name, dataset.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "dataset description")
	cmd.Flags().IntVar(&expandJSONDepth, "expand-json-depth", 0, "depth to unpack nested JSON fields")

	return cmd
}

func newDatasetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SLUG",
		Short: "Delete a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Datasets().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting dataset: %w", err)
			}

			fmt.Printf("Deleted dataset '%s'\n", args[0])

			return nil
		},
	}
}
