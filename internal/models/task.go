// Package models contains domain types for the task board.
// Persistence lives in internal/adapters/*; these types carry no I/O.
package models

// Status identifies a lane. A task's status always matches the lane holding it.
type Status string

// Task status constants
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

// Lanes lists the board lanes in display order.
var Lanes = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s names one of the three lanes.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Title returns the human label for the lane.
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ParseStatus accepts the canonical lane names plus a few aliases used on the CLI.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "todo", "to-do", "backlog":
		return StatusTodo, true
	case "inprogress", "in-progress", "in_progress", "doing":
		return StatusInProgress, true
	case "done", "complete":
		return StatusDone, true
	}
	return "", false
}

// Task is a single card on the board.
type Task struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Status Status `json:"status" yaml:"status"`
}
