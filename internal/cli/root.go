package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/ctxutil"
	"github.com/example/kanban/internal/version"
	"github.com/example/kanban/internal/wire"
)

// RootCmd returns the kanban root command with every subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "kanban",
		Short:   "kanban - a three-lane task board",
		Version: version.String(),
		Long: `kanban keeps tasks on a board with three lanes: To Do, In Progress and Done.
Use the subcommands for one-shot edits, or "kanban board" for the interactive view.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			dir, _ := cmd.Flags().GetString("config-dir")
			wire.Configure(wire.Options{
				ConfigDir:   dir,
				Interactive: cmd.Name() == "board",
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			wire.Close()
		},
	}

	rootCmd.PersistentFlags().String("config-dir", "", "Directory containing .kanban/config.json (default: current directory)")

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(AddCmd())
	rootCmd.AddCommand(EditCmd())
	rootCmd.AddCommand(RmCmd())
	rootCmd.AddCommand(PromoteCmd())
	rootCmd.AddCommand(CompleteCmd())
	rootCmd.AddCommand(MoveCmd())
	rootCmd.AddCommand(ReorderCmd())
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(ExportCmd())
	rootCmd.AddCommand(SlotsCmd())
	rootCmd.AddCommand(ResetCmd())
	rootCmd.AddCommand(BoardCmd())
	rootCmd.AddCommand(VersionCmd())

	return rootCmd
}

func cliContext() context.Context {
	return ctxutil.WithSurface(context.Background(), ctxutil.SurfaceCLI)
}
