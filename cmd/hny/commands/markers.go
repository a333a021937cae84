package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// NewMarkersCommand creates the markers command group.
func NewMarkersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "markers",
		Aliases: []string{"marker"},
		Short:   "Manage markers",
		Long:    "List, create, and delete point-in-time markers on a dataset",
	}

	cmd.AddCommand(newMarkersListCommand())
	cmd.AddCommand(newMarkersCreateCommand())
	cmd.AddCommand(newMarkersDeleteCommand())
	cmd.AddCommand(newMarkersSettingsCommand())

	return cmd
}

func formatUnix(ts int64) string {
	if ts == 0 {
		return constants.NotAvailable
	}

	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05")
}

func newMarkersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [DATASET]",
		Short: "List markers of a dataset",
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

			markers, err := client.Markers().List(context.Background(), dataset)
			if err != nil {
				return fmt.Errorf("listing markers: %w", err)
			}

			if handled, err := encodeOutput(markers); handled {
				return err
			}

			if len(markers) == 0 {
				fmt.Println("No markers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Message", "Type", "Start", "End")

			for _, marker := range markers {
				_ = table.Append(marker.ID, marker.Message, marker.Type,
					formatUnix(marker.StartTime), formatUnix(marker.EndTime))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newMarkersCreateCommand() *cobra.Command {
	var dataset, message, markerType, markerURL string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a marker at the current time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return constants.ErrMessageRequired
			}

			ds, err := resolveDatasetFlag(dataset)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			marker, err := client.Markers().Create(context.Background(), ds, &honeycomb.MarkerCreateRequest{
				Message: message,
				Type:    markerType,
				URL:     markerURL,
			})
			if err != nil {
				return fmt.Errorf("creating marker: %w", err)
			}

			if handled, err := encodeOutput(marker); handled {
				return err
			}

			fmt.Printf("Created marker '%s' (id: %s)\n", marker.Message, marker.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")
	cmd.Flags().StringVarP(&message, "message", "m", "", "marker message")
	cmd.Flags().StringVar(&markerType, "type", "", "marker type (e.g. deploy)")
	cmd.Flags().StringVar(&markerURL, "url", "", "marker link URL")

	return cmd
}

func newMarkersDeleteCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a marker",
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

			marker, err := client.Markers().Delete(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("deleting marker: %w", err)
			}

			fmt.Printf("Deleted marker '%s' (%s)\n", marker.ID, marker.Message)

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}

func newMarkersSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settings [DATASET]",
		Short: "List marker settings of a dataset",
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

			settings, err := client.Markers().ListSettings(context.Background(), dataset)
			if err != nil {
				return fmt.Errorf("listing marker settings: %w", err)
			}

			if handled, err := encodeOutput(settings); handled {
				return err
			}

			if len(settings) == 0 {
				fmt.Println("No marker settings found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Type", "Color", "ID")

			for _, setting := range settings {
				_ = table.Append(setting.Type, setting.Color, setting.ID)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
