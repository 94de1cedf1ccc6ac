// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument resolution and output
// formatting, but delegate board logic to the BoardService.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/core/card"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/primary"
)

// BoardAdapter is a thin adapter that translates CLI operations to BoardService calls.
type BoardAdapter struct {
	service primary.BoardService
	out     io.Writer
}

// NewBoardAdapter creates a new BoardAdapter with the given service.
func NewBoardAdapter(service primary.BoardService, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		service: service,
		out:     out,
	}
}

func okMark() string   { return color.New(color.FgGreen).Sprint("✓") }
func skipMark() string { return color.New(color.FgYellow).Sprint("–") }

// Add creates a new task in todo.
func (a *BoardAdapter) Add(ctx context.Context, text string) error {
	task, err := a.service.AddTask(ctx, text)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Added task %s: %s\n", okMark(), shortID(task.ID), task.Text)
	a.printWarning()
	return nil
}

// Edit replaces a task's text.
func (a *BoardAdapter) Edit(ctx context.Context, idOrPrefix, text string) error {
	id, err := a.service.Resolve(idOrPrefix)
	if err != nil {
		return err
	}
	changed, err := a.service.EditTask(ctx, id, text)
	if err != nil {
		return err
	}
	return a.report(changed, id, "updated", "text unchanged")
}

// Delete removes a task.
func (a *BoardAdapter) Delete(ctx context.Context, idOrPrefix string) error {
	id, err := a.service.Resolve(idOrPrefix)
	if err != nil {
		return err
	}
	changed, err := a.service.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	return a.report(changed, id, "deleted", "already gone")
}

// Promote moves a todo task to inprogress.
func (a *BoardAdapter) Promote(ctx context.Context, idOrPrefix string) error {
	id, err := a.service.Resolve(idOrPrefix)
	if err != nil {
		return err
	}
	reason := a.reason(id, card.ActionPromote)
	changed, err := a.service.PromoteTask(ctx, id)
	if err != nil {
		return err
	}
	return a.report(changed, id, "moved to In Progress", reason)
}

// Complete moves a task to done.
func (a *BoardAdapter) Complete(ctx context.Context, idOrPrefix string) error {
	id, err := a.service.Resolve(idOrPrefix)
	if err != nil {
		return err
	}
	reason := a.reason(id, card.ActionComplete)
	changed, err := a.service.CompleteTask(ctx, id)
	if err != nil {
		return err
	}
	return a.report(changed, id, "completed", reason)
}

// Move swaps a task with its neighbour.
func (a *BoardAdapter) Move(ctx context.Context, idOrPrefix string, dir board.Direction) error {
	id, err := a.service.Resolve(idOrPrefix)
	if err != nil {
		return err
	}
	action := card.ActionMoveUp
	if dir == board.Down {
		action = card.ActionMoveDown
	}
	reason := a.reason(id, action)
	changed, err := a.service.MoveTask(ctx, id, dir)
	if err != nil {
		return err
	}
	return a.report(changed, id, "moved "+string(dir), reason)
}

// Reorder moves a task between positions of one lane. Positions are 1-based
// on the command line.
func (a *BoardAdapter) Reorder(ctx context.Context, lane models.Status, from, to int) error {
	changed, err := a.service.ReorderTask(ctx, lane, from-1, to-1)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(a.out, "%s %s unchanged (positions %d→%d not valid)\n", skipMark(), lane.Title(), from, to)
		return nil
	}
	fmt.Fprintf(a.out, "%s %s: moved position %d to %d\n", okMark(), lane.Title(), from, to)
	a.printWarning()
	return nil
}

// Show prints the board, or one lane when lane is non-empty.
func (a *BoardAdapter) Show(ctx context.Context, lane models.Status) error {
	b := a.service.Board()
	counts := a.service.Counts()

	lanes := models.Lanes
	if lane != "" {
		lanes = []models.Status{lane}
	}

	for _, l := range lanes {
		tasks := b.Lane(l)
		fmt.Fprintf(a.out, "\n%s (%d)\n", laneColor(l).Sprint(l.Title()), counts[l])
		fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
		if len(tasks) == 0 {
			fmt.Fprintln(a.out, color.New(color.Faint).Sprint("  (empty)"))
			continue
		}
		for i, t := range tasks {
			fmt.Fprintf(a.out, "%3d. %-8s %s\n", i+1, shortID(t.ID), t.Text)
		}
	}
	fmt.Fprintln(a.out)

	a.printWarning()
	return nil
}

// Export writes the board as JSON (the snapshot format) or YAML.
func (a *BoardAdapter) Export(ctx context.Context, format string) error {
	b := a.service.Board()

	switch strings.ToLower(format) {
	case "", "json":
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode board: %w", err)
		}
		fmt.Fprintln(a.out, string(data))
	case "yaml", "yml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("failed to encode board: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (use json or yaml)", format)
	}
	return nil
}

func (a *BoardAdapter) report(changed bool, id, did, reason string) error {
	if !changed {
		fmt.Fprintf(a.out, "%s Task %s unchanged (%s)\n", skipMark(), shortID(id), reason)
		return nil
	}
	fmt.Fprintf(a.out, "%s Task %s %s\n", okMark(), shortID(id), did)
	a.printWarning()
	return nil
}

// reason explains why action would be a no-op for id.
func (a *BoardAdapter) reason(id string, action card.Action) string {
	if r := card.Explain(a.service.Board(), id, action); r != "" {
		return r
	}
	return "nothing to do"
}

func (a *BoardAdapter) printWarning() {
	if w := a.service.LastWarning(); w != "" {
		fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgYellow).Sprint("warning:"), w)
	}
}

func laneColor(s models.Status) *color.Color {
	switch s {
	case models.StatusTodo:
		return color.New(color.FgCyan, color.Bold)
	case models.StatusInProgress:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

// shortID trims uuids to their first block for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 && len(id) == 36 {
		return id[:i]
	}
	return id
}
