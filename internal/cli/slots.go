package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/wire"
)

// SlotsCmd returns the slots command
func SlotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the boards stored in the backend",
		Long: `List every snapshot slot in the configured backend.
The slot this config uses is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wire.Config()
			if err != nil {
				return err
			}
			store, err := wire.SlotStore()
			if err != nil {
				return err
			}

			slots, err := store.ListSlots(cliContext())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(slots) == 0 {
				fmt.Fprintln(out, "No boards saved yet")
				return nil
			}
			for _, slot := range slots {
				mark := " "
				if slot == cfg.Slot {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, slot)
			}
			return nil
		},
	}
}

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [slot]",
		Short: "Delete a stored board",
		Long: `Delete the snapshot in SLOT (default: the configured slot).
The next command that loads that slot starts from an empty board.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wire.Config()
			if err != nil {
				return err
			}
			slot := cfg.Slot
			if len(args) == 1 {
				slot = args[0]
			}

			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("refusing to delete board %q without --force", slot)
			}

			store, err := wire.SlotStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cliContext(), slot); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Board %s deleted\n", slot)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Confirm the deletion")
	return cmd
}
