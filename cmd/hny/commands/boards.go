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

// NewBoardsCommand creates the boards command group.
func NewBoardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board"},
		Short:   "Manage boards",
		Long:    "List, inspect, create, and delete boards",
	}

	cmd.AddCommand(newBoardsListCommand())
	cmd.AddCommand(newBoardsGetCommand())
	cmd.AddCommand(newBoardsCreateCommand())
	cmd.AddCommand(newBoardsDeleteCommand())

	return cmd
}

func newBoardsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			boards, err := client.Boards().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing boards: %w", err)
			}

			if handled, err := encodeOutput(boards); handled {
				return err
			}

			if len(boards) == 0 {
				fmt.Println("No boards found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Panels", "Style")

			for _, board := range boards {
				_ = table.Append(board.Name, board.ID, strconv.Itoa(len(board.Queries)), board.Style)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newBoardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			board, err := client.Boards().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting board: %w", err)
			}

			if handled, err := encodeOutput(board); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", board.Name)
			_ = table.Append("ID", board.ID)
			_ = table.Append("Description", board.Description)
			_ = table.Append("Panels", strconv.Itoa(len(board.Queries)))
			_ = table.Append("URL", board.Links.BoardURL)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newBoardsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			board, err := client.Boards().Create(context.Background(), &honeycomb.BoardCreateRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("creating board: %w", err)
			}

			if handled, err := encodeOutput(board); handled {
				return err
			}

			fmt.Printf("Created board '%s' (id: %s)\n", board.Name, board.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "board description")

	return cmd
}

func newBoardsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Boards().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting board: %w", err)
			}

			fmt.Printf("Deleted board '%s'\n", args[0])

			return nil
		},
	}
}
