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

// NewTriggersCommand creates the triggers command group.
func NewTriggersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "triggers",
		Aliases: []string{"trigger"},
		Short:   "Manage alerting triggers",
		Long:    "List, inspect, create, and delete triggers on a dataset",
	}

	cmd.AddCommand(newTriggersListCommand())
	cmd.AddCommand(newTriggersGetCommand())
	cmd.AddCommand(newTriggersCreateCommand())
	cmd.AddCommand(newTriggersDeleteCommand())

	return cmd
}

func newTriggersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [DATASET]",
		Short: "List triggers of a dataset",
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

			triggers, err := client.Triggers().List(context.Background(), dataset)
			if err != nil {
				return fmt.Errorf("listing triggers: %w", err)
			}

			if handled, err := encodeOutput(triggers); handled {
				return err
			}

			if len(triggers) == 0 {
				fmt.Println("No triggers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Threshold", "Frequency", "Disabled", "Triggered")

			for _, trigger := range triggers {
				threshold := fmt.Sprintf("%s %g", trigger.Threshold.Op, trigger.Threshold.Value)
				_ = table.Append(trigger.Name, trigger.ID, threshold,
					strconv.Itoa(trigger.Frequency), yesNo(trigger.Disabled), yesNo(trigger.Triggered))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newTriggersGetCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show a trigger",
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

			trigger, err := client.Triggers().Get(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("getting trigger: %w", err)
			}

			if handled, err := encodeOutput(trigger); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", trigger.Name)
			_ = table.Append("ID", trigger.ID)
			_ = table.Append("Description", trigger.Description)
			_ = table.Append("Threshold", fmt.Sprintf("%s %g", trigger.Threshold.Op, trigger.Threshold.Value))
			_ = table.Append("Frequency", strconv.Itoa(trigger.Frequency))
			_ = table.Append("Disabled", yesNo(trigger.Disabled))
			_ = table.Append("Triggered", yesNo(trigger.Triggered))
			_ = table.Append("Recipients", strconv.Itoa(len(trigger.Recipients)))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}

func newTriggersCreateCommand() *cobra.Command {
	var (
		dataset     string
		description string
		calc        string
		filters     []string
		thresholdOp string
		threshold   float64
		frequency   int
		timeRange   int
		recipients  []string
		disabled    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a trigger",
		Long: `Create a trigger that evaluates a query on a schedule and alerts
when the result crosses a threshold. The query takes exactly one
calculation (OP or OP:column) and optional filters (column:op:value).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrNameRequired
			}

			if !cmd.Flags().Changed("threshold") {
				return constants.ErrThresholdRequired
			}

			ds, err := resolveDatasetFlag(dataset)
			if err != nil {
				return err
			}

			builder, err := buildQuery([]string{calc}, filters, nil, timeRange, 0)
			if err != nil {
				return err
			}

			spec, err := builder.BuildTriggerQuery()
			if err != nil {
				return err
			}

			request := &honeycomb.TriggerCreateRequest{
				Name:        args[0],
				Description: description,
				Threshold: honeycomb.TriggerThreshold{
					Op:    honeycomb.TriggerThresholdOp(thresholdOp),
					Value: threshold,
				},
				Frequency: frequency,
				Query:     spec,
				Disabled:  disabled,
			}

			for _, id := range recipients {
				request.Recipients = append(request.Recipients, honeycomb.Recipient{ID: id})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			trigger, err := client.Triggers().Create(context.Background(), ds, request)
			if err != nil {
				return fmt.Errorf("creating trigger: %w", err)
			}

			if handled, err := encodeOutput(trigger); handled {
				return err
			}

			fmt.Printf("Created trigger '%s' (id: %s)\n", trigger.Name, trigger.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")
	cmd.Flags().StringVar(&description, "description", "", "trigger description")
	cmd.Flags().StringVar(&calc, "calc", "COUNT", "calculation (OP or OP:column)")
	cmd.Flags().StringSliceVar(&filters, "filter", nil, "filter (column:op:value), repeatable")
	cmd.Flags().StringVar(&thresholdOp, "op", ">", "threshold operator (>, >=, <, <=)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "threshold value")
	cmd.Flags().IntVar(&frequency, "frequency", 900, "evaluation frequency in seconds")
	cmd.Flags().IntVar(&timeRange, "time-range", 900, "query time range in seconds")
	cmd.Flags().StringSliceVar(&recipients, "recipient", nil, "recipient id, repeatable")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the trigger disabled")

	return cmd
}

func newTriggersDeleteCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a trigger",
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

			err = client.Triggers().Delete(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("deleting trigger: %w", err)
			}

			fmt.Printf("Deleted trigger '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}
