package card

import (
	"fmt"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/models"
)

// Action is a control offered on a card.
type Action string

// Card actions
const (
	ActionMoveUp   Action = "up"
	ActionMoveDown Action = "down"
	ActionPromote  Action = "promote"
	ActionComplete Action = "complete"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
)

// ActionState is an action together with whether it can run right now.
type ActionState struct {
	Action  Action
	Enabled bool
	Reason  string
}

// Actions lists the controls shown for a task, in display order.
//
//	todo:       up, down, promote, edit, delete
//	inprogress: up, down, complete, edit, delete
//	done:       up, down, edit, delete
//
// Move controls are present but disabled at lane boundaries. Returns nil if
// the task is not on the board.
func Actions(b models.Board, taskID string) []ActionState {
	_, status, idx, ok := b.Find(taskID)
	if !ok {
		return nil
	}
	laneLen := len(b.Lane(status))
	sc := board.StatusContext{TaskID: taskID, Status: status}

	actions := []ActionState{
		fromGuard(ActionMoveUp, board.CanMove(board.MoveContext{TaskID: taskID, Direction: board.Up, Index: idx, LaneLen: laneLen})),
		fromGuard(ActionMoveDown, board.CanMove(board.MoveContext{TaskID: taskID, Direction: board.Down, Index: idx, LaneLen: laneLen})),
	}

	switch status {
	case models.StatusTodo:
		actions = append(actions, fromGuard(ActionPromote, board.CanPromote(sc)))
	case models.StatusInProgress:
		actions = append(actions, fromGuard(ActionComplete, board.CanComplete(sc)))
	}

	return append(actions,
		ActionState{Action: ActionEdit, Enabled: true},
		ActionState{Action: ActionDelete, Enabled: true},
	)
}

// Enabled reports whether action is offered and enabled for the task.
func Enabled(b models.Board, taskID string, action Action) bool {
	for _, a := range Actions(b, taskID) {
		if a.Action == action {
			return a.Enabled
		}
	}
	return false
}

// Explain returns why action is unavailable for the task, or "" when it can
// run. Actions a lane does not offer are explained by their guard.
func Explain(b models.Board, taskID string, action Action) string {
	_, status, _, ok := b.Find(taskID)
	if !ok {
		return fmt.Sprintf("task %s not found", taskID)
	}
	for _, a := range Actions(b, taskID) {
		if a.Action == action {
			return a.Reason
		}
	}

	sc := board.StatusContext{TaskID: taskID, Status: status}
	switch action {
	case ActionPromote:
		return board.CanPromote(sc).Reason
	case ActionComplete:
		return board.CanComplete(sc).Reason
	}
	return fmt.Sprintf("%s is not available for task %s", action, taskID)
}

func fromGuard(action Action, r board.GuardResult) ActionState {
	return ActionState{Action: action, Enabled: r.Allowed, Reason: r.Reason}
}
