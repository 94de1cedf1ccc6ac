// Package board contains the pure business logic for the task board.
// Every operation takes a Board and returns a new Board plus whether anything
// changed. Inputs are never mutated; unknown ids are soft no-ops.
package board

import (
	"errors"
	"strings"

	"github.com/example/kanban/internal/models"
)

// ErrEmptyText is reported by callers when task text is blank after trimming.
var ErrEmptyText = errors.New("task text cannot be empty")

// IDFunc produces a fresh task id.
type IDFunc func() string

// Direction is the target of a single-step move within a lane.
type Direction string

// Move directions
const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection converts CLI input into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	}
	return "", false
}

// AddTask appends a new todo task. Blank text is rejected.
func AddTask(b models.Board, text string, newID IDFunc) (models.Board, models.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return b, models.Task{}, false
	}

	task := models.Task{ID: newID(), Text: text, Status: models.StatusTodo}
	lane := append(copyLane(b.Todo), task)
	return b.WithLane(models.StatusTodo, lane), task, true
}

// EditTask replaces the text of a task in place.
func EditTask(b models.Board, id, text string) (models.Board, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return b, false
	}

	task, status, idx, ok := b.Find(id)
	if !ok || task.Text == text {
		return b, false
	}

	lane := copyLane(b.Lane(status))
	lane[idx].Text = text
	return b.WithLane(status, lane), true
}

// DeleteTask removes a task from whichever lane holds it.
func DeleteTask(b models.Board, id string) (models.Board, bool) {
	_, status, idx, ok := b.Find(id)
	if !ok {
		return b, false
	}
	return b.WithLane(status, removeAt(b.Lane(status), idx)), true
}

// CompleteTask moves a task to the end of the done lane.
func CompleteTask(b models.Board, id string) (models.Board, bool) {
	task, status, _, ok := b.Find(id)
	if !ok {
		return b, false
	}
	if r := CanComplete(StatusContext{TaskID: id, Status: status}); !r.Allowed {
		return b, false
	}
	return transfer(b, task, status, models.StatusDone), true
}

// PromoteToInProgress moves a todo task to the end of the inprogress lane.
func PromoteToInProgress(b models.Board, id string) (models.Board, bool) {
	task, status, _, ok := b.Find(id)
	if !ok {
		return b, false
	}
	if r := CanPromote(StatusContext{TaskID: id, Status: status}); !r.Allowed {
		return b, false
	}
	return transfer(b, task, status, models.StatusInProgress), true
}

// MoveTask swaps a task with its neighbour in the same lane.
func MoveTask(b models.Board, dir Direction, id string) (models.Board, bool) {
	_, status, idx, ok := b.Find(id)
	if !ok {
		return b, false
	}

	lane := b.Lane(status)
	if r := CanMove(MoveContext{TaskID: id, Direction: dir, Index: idx, LaneLen: len(lane)}); !r.Allowed {
		return b, false
	}

	target := idx - 1
	if dir == Down {
		target = idx + 1
	}

	moved := copyLane(lane)
	moved[idx], moved[target] = moved[target], moved[idx]
	return b.WithLane(status, moved), true
}

// ReorderWithinLane removes the task at from and reinserts it at to.
func ReorderWithinLane(b models.Board, lane models.Status, from, to int) (models.Board, bool) {
	tasks := b.Lane(lane)
	if from == to || from < 0 || to < 0 || from >= len(tasks) || to >= len(tasks) {
		return b, false
	}

	task := tasks[from]
	rest := removeAt(tasks, from)
	reordered := make([]models.Task, 0, len(tasks))
	reordered = append(reordered, rest[:to]...)
	reordered = append(reordered, task)
	reordered = append(reordered, rest[to:]...)
	return b.WithLane(lane, reordered), true
}

func transfer(b models.Board, task models.Task, from, to models.Status) models.Board {
	_, _, idx, _ := b.Find(task.ID)
	b = b.WithLane(from, removeAt(b.Lane(from), idx))
	task.Status = to
	return b.WithLane(to, append(copyLane(b.Lane(to)), task))
}

func copyLane(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return out
}

func removeAt(tasks []models.Task, i int) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}
