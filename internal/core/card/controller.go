// Package card holds the per-card view/edit state machine and decides which
// actions a card offers for its current lane and position.
package card

import (
	"strings"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/models"
)

// ErrEmptyDraft is returned when an edit is committed with blank text.
var ErrEmptyDraft = board.ErrEmptyText

// Mode is the card's UI sub-state.
type Mode int

// Card modes
const (
	Viewing Mode = iota
	Editing
)

// Controller tracks the edit state of a single card.
type Controller struct {
	taskID string
	mode   Mode
	draft  string
}

// New returns a controller for taskID in the Viewing state.
func New(taskID string) *Controller {
	return &Controller{taskID: taskID}
}

// TaskID returns the id of the card this controller drives.
func (c *Controller) TaskID() string { return c.taskID }

// Mode returns the current sub-state.
func (c *Controller) Mode() Mode { return c.mode }

// Draft returns the text being edited.
func (c *Controller) Draft() string { return c.draft }

// BeginEdit enters Editing with the task's current text as the draft. Any
// status may be edited. Returns false if the task is no longer on the board.
func (c *Controller) BeginEdit(b models.Board) bool {
	task, _, _, ok := b.Find(c.taskID)
	if !ok {
		return false
	}
	c.mode = Editing
	c.draft = task.Text
	return true
}

// SetDraft replaces the draft. Blank drafts are allowed until commit.
func (c *Controller) SetDraft(text string) {
	if c.mode == Editing {
		c.draft = text
	}
}

// Commit saves the trimmed draft. A blank draft is rejected with
// ErrEmptyDraft and the card stays in Editing. A task that disappeared while
// editing is dropped silently.
func (c *Controller) Commit(b models.Board) (models.Board, bool, error) {
	if c.mode != Editing {
		return b, false, nil
	}
	text := strings.TrimSpace(c.draft)
	if text == "" {
		return b, false, ErrEmptyDraft
	}

	next, changed := board.EditTask(b, c.taskID, text)
	c.Cancel()
	return next, changed, nil
}

// Cancel discards the draft and returns to Viewing.
func (c *Controller) Cancel() {
	c.mode = Viewing
	c.draft = ""
}
