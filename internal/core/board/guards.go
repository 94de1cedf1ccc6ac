package board

import (
	"fmt"

	"github.com/example/kanban/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// StatusContext provides context for lane transition guards.
type StatusContext struct {
	TaskID string
	Status models.Status
}

// MoveContext provides context for single-step move guards.
type MoveContext struct {
	TaskID    string
	Direction Direction
	Index     int
	LaneLen   int
}

// CanPromote evaluates whether a task can be moved to inprogress.
// Rules:
// - Status must be "todo"
func CanPromote(ctx StatusContext) GuardResult {
	if ctx.Status != models.StatusTodo {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only promote todo tasks (task %s is %s)", ctx.TaskID, ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// CanComplete evaluates whether a task can be completed.
// Rules:
// - Status must not already be "done"
func CanComplete(ctx StatusContext) GuardResult {
	if ctx.Status == models.StatusDone {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("task %s is already done", ctx.TaskID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanMove evaluates whether a task can step one position in its lane.
// Rules:
// - Direction must be up or down
// - The first task cannot move up, the last task cannot move down
func CanMove(ctx MoveContext) GuardResult {
	switch ctx.Direction {
	case Up:
		if ctx.Index <= 0 {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("task %s is already first in its lane", ctx.TaskID),
			}
		}
	case Down:
		if ctx.Index >= ctx.LaneLen-1 {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("task %s is already last in its lane", ctx.TaskID),
			}
		}
	default:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown direction %q (use up or down)", ctx.Direction),
		}
	}

	return GuardResult{Allowed: true}
}

// CanDrag evaluates whether a task may start a drag-reorder gesture.
// Rules:
// - Done tasks are not sortable by drag
func CanDrag(ctx StatusContext) GuardResult {
	if ctx.Status == models.StatusDone {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("task %s is done and cannot be dragged", ctx.TaskID),
		}
	}

	return GuardResult{Allowed: true}
}
