package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/ctxutil"
	"github.com/example/kanban/internal/tui"
	"github.com/example/kanban/internal/wire"
)

// BoardCmd returns the interactive board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long: `Open the board in the terminal.

Keys: ←/→ lane, ↑/↓ card, K/J move, p promote, c complete, e edit,
d delete, a add, space grab/drop, esc cancel, q quit.
Drag a card with the mouse to reorder it within its lane.

Logs go to the configured log file (default ~/.kanban/kanban.log) while
the board is open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire.BoardService()
			if err != nil {
				return err
			}
			return tui.Run(ctxutil.WithSurface(context.Background(), ctxutil.SurfaceBoard), svc)
		},
	}
}
