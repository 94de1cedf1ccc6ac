// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI and the interactive board
// drive the application.
package primary

import (
	"context"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/core/card"
	"github.com/example/kanban/internal/core/drag"
	"github.com/example/kanban/internal/models"
)

// BoardService defines the primary port for board operations.
// Mutating methods report whether the board changed; a false result with a
// nil error is a soft no-op (blank text, stale id, boundary move).
type BoardService interface {
	// Mount loads the persisted board, falling back to an empty one.
	Mount(ctx context.Context) error

	// Board returns a copy of the current board.
	Board() models.Board

	// Counts returns the number of tasks in each lane.
	Counts() map[models.Status]int

	// Resolve expands a unique id prefix to a full task id.
	Resolve(idOrPrefix string) (string, error)

	// AddTask appends a new task to the todo lane.
	AddTask(ctx context.Context, text string) (*models.Task, error)

	// EditTask replaces a task's text.
	EditTask(ctx context.Context, id, text string) (bool, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) (bool, error)

	// CompleteTask moves a task to the end of done.
	CompleteTask(ctx context.Context, id string) (bool, error)

	// PromoteTask moves a todo task to the end of inprogress.
	PromoteTask(ctx context.Context, id string) (bool, error)

	// MoveTask swaps a task with its neighbour in the same lane.
	MoveTask(ctx context.Context, id string, dir board.Direction) (bool, error)

	// ReorderTask moves the task at from to position to within lane.
	ReorderTask(ctx context.Context, lane models.Status, from, to int) (bool, error)

	// PointerDown arms a drag gesture on a card.
	PointerDown(lane models.Status, index, x, y int) bool

	// PointerMove feeds pointer motion to the drag controller.
	PointerMove(x, y int) bool

	// GrabCard starts a keyboard drag on a card.
	GrabCard(lane models.Status, index int) bool

	// HoverCard records the card under the pointer during a drag.
	HoverCard(id string)

	// DropCard resolves the drag gesture.
	DropCard(ctx context.Context, lane models.Status, targetID string) (bool, error)

	// CancelDrag abandons the drag gesture.
	CancelDrag()

	// DragSession returns the state of the drag controller.
	DragSession() drag.Session

	// BeginEdit puts a card into edit mode.
	BeginEdit(id string) bool

	// UpdateDraft replaces the draft text of a card being edited.
	UpdateDraft(id, text string)

	// CommitEdit saves a card's draft.
	CommitEdit(ctx context.Context, id string) (bool, error)

	// CancelEdit discards a card's draft.
	CancelEdit(id string)

	// CardMode returns the card's mode and draft.
	CardMode(id string) (card.Mode, string)

	// Actions lists the controls available on a card.
	Actions(id string) []card.ActionState

	// LastWarning returns the most recent persistence warning, if any.
	LastWarning() string
}
