package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// Static errors for err113 compliance.
var (
	ErrInvalidCalcSpec   = errors.New("invalid calculation, expected OP or OP:column")
	ErrInvalidFilterSpec = errors.New("invalid filter, expected column:op or column:op:value")
)

// NewQueryCommand creates the query command group.
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run queries",
		Long:  "Build, run, and poll analytical queries against a dataset",
	}

	cmd.AddCommand(newQueryRunCommand())

	return cmd
}

func newQueryRunCommand() *cobra.Command {
	var (
		calcs     []string
		filters   []string
		groupBy   []string
		timeRange int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "run [DATASET]",
		Short: "Run a query and wait for the result",
		Long: `Build a query from flags, run it, and poll until the result is complete.

Calculations take the form OP or OP:column, for example COUNT or
AVG:duration_ms. Filters take the form column:op:value, for example
status_code:>=:500 or service.name:=:api.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := requireDataset(args)
			if err != nil {
				return err
			}

			builder, err := buildQuery(calcs, filters, groupBy, timeRange, limit)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Queries().Run(context.Background(), dataset, honeycomb.QueryInput{Builder: builder})
			if err != nil {
				return fmt.Errorf("running query: %w", err)
			}

			if handled, err := encodeOutput(result); handled {
				return err
			}

			return renderQueryResult(result)
		},
	}

	cmd.Flags().StringSliceVar(&calcs, "calc", []string{"COUNT"}, "calculation (OP or OP:column), repeatable")
	cmd.Flags().StringSliceVar(&filters, "filter", nil, "filter (column:op:value), repeatable")
	cmd.Flags().StringSliceVar(&groupBy, "group-by", nil, "column to group results by, repeatable")
	cmd.Flags().IntVar(&timeRange, "time-range", 0, "relative time range in seconds")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of result rows")

	return cmd
}

func buildQuery(calcs, filters, groupBy []string, timeRange, limit int) (*honeycomb.QueryBuilder, error) {
	builder := honeycomb.NewQueryBuilder()

	for _, calc := range calcs {
		op, column, err := parseCalc(calc)
		if err != nil {
			return nil, err
		}

		builder.Calculate(op, column)
	}

	for _, filter := range filters {
		column, op, value, err := parseFilter(filter)
		if err != nil {
			return nil, err
		}

		builder.Filter(column, op, value)
	}

	if len(groupBy) > 0 {
		builder.GroupBy(groupBy...)
	}

	if timeRange > 0 {
		builder.TimeRange(timeRange)
	}

	if limit > 0 {
		builder.Limit(limit)
	}

	return builder, nil
}

func parseCalc(spec string) (honeycomb.CalculationOp, string, error) {
	parts := strings.SplitN(spec, ":", 2)

	op := honeycomb.CalculationOp(strings.ToUpper(parts[0]))
	if op.RequiresColumn() && len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCalcSpec, spec)
	}

	column := ""
	if len(parts) == 2 {
		column = parts[1]
	}

	return op, column, nil
}

func parseFilter(spec string) (string, honeycomb.FilterOp, interface{}, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidFilterSpec, spec)
	}

	op := honeycomb.FilterOp(parts[1])

	var value interface{}
	if len(parts) == 3 {
		value = parts[2]
	}

	return parts[0], op, value, nil
}

func renderQueryResult(result *honeycomb.QueryResult) error {
	if result.Data == nil || len(result.Data.Results) == 0 {
		fmt.Println("No results")

		return nil
	}

	// Collect a stable column order across all rows.
	columnSet := map[string]bool{}
	for _, row := range result.Data.Results {
		for key := range row {
			columnSet[key] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for key := range columnSet {
		columns = append(columns, key)
	}

	sort.Strings(columns)

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header...)

	for _, row := range result.Data.Results {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := row[col]; ok {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}

		_ = table.Append(cells)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if result.Links.QueryURL != "" {
		fmt.Println("\nPermalink:", result.Links.QueryURL)
	}

	return nil
}
