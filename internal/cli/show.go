package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/wire"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Print the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			laneFlag, _ := cmd.Flags().GetString("lane")

			var lane models.Status
			if laneFlag != "" {
				l, err := parseLane(laneFlag)
				if err != nil {
					return err
				}
				lane = l
			}

			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Show(cliContext(), lane)
		},
	}
	cmd.Flags().StringP("lane", "l", "", "Only show one lane (todo, inprogress, done)")
	return cmd
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			adapter, err := wire.BoardAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Export(cliContext(), format)
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Output format (json or yaml)")
	return cmd
}
