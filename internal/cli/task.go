package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task to To Do",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Add(cliContext(), strings.Join(args, " "))
		},
	}
}

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [task-id] [text]",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Edit(cliContext(), args[0], strings.Join(args[1:], " "))
		},
	}
}

// RmCmd returns the rm command
func RmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [task-id]",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Delete(cliContext(), args[0])
		},
	}
}

// PromoteCmd returns the promote command
func PromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote [task-id]",
		Short: "Move a To Do task to In Progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Promote(cliContext(), args[0])
		},
	}
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [task-id]",
		Short: "Move a task to Done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Complete(cliContext(), args[0])
		},
	}
}

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [task-id] [up|down]",
		Short: "Swap a task with its neighbour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := board.ParseDirection(args[1])
			if !ok {
				return fmt.Errorf("unknown direction %q (use up or down)", args[1])
			}
			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Move(cliContext(), args[0], dir)
		},
	}
}

// ReorderCmd returns the reorder command
func ReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder [lane] [from] [to]",
		Short: "Move a task to another position in its lane",
		Long: `Move the task at position FROM to position TO within LANE.
Positions are 1-based, as printed by "kanban show".

Examples:
  kanban reorder todo 3 1
  kanban reorder inprogress 1 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lane, err := parseLane(args[0])
			if err != nil {
				return err
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[2])
			}

			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Reorder(cliContext(), lane, from, to)
		},
	}
}

func parseLane(s string) (models.Status, error) {
	lane, ok := models.ParseStatus(strings.ToLower(s))
	if !ok {
		return "", fmt.Errorf("unknown lane %q (use todo, inprogress or done)", s)
	}
	return lane, nil
}
