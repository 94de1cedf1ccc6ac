// Package drag implements the drag-to-reorder state machine shared by all
// lanes of the board. The controller never mutates a board itself: Drop
// resolves the gesture into a single ReorderWithinLane call.
package drag

import (
	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/models"
)

// State is the controller's current phase.
type State int

// Controller states
const (
	// Idle means no gesture is in progress; ActiveLane is empty.
	Idle State = iota
	// Pending means the pointer is down on a card but has not yet travelled
	// past the activation threshold.
	Pending
	// Dragging means a reorder gesture is active in ActiveLane.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Session is a read-only view of the gesture in progress.
type Session struct {
	State      State
	ActiveLane models.Status
	TaskID     string
	Origin     int
	HoverID    string
}

// Controller tracks at most one drag gesture at a time.
type Controller struct {
	threshold int

	state   State
	lane    models.Status
	taskID  string
	origin  int
	hoverID string
	startX  int
	startY  int
}

// NewController creates an idle controller. A drag activates once the pointer
// has moved strictly further than threshold cells from where it was pressed.
func NewController(threshold int) *Controller {
	if threshold < 0 {
		threshold = 0
	}
	return &Controller{threshold: threshold}
}

// Session returns the current gesture state.
func (c *Controller) Session() Session {
	return Session{
		State:      c.state,
		ActiveLane: c.lane,
		TaskID:     c.taskID,
		Origin:     c.origin,
		HoverID:    c.hoverID,
	}
}

// Active reports whether a drag is in progress, and in which lane.
func (c *Controller) Active() (models.Status, bool) {
	if c.state != Dragging {
		return "", false
	}
	return c.lane, true
}

// PointerDown arms a gesture on the card at index in lane. It returns false,
// leaving the controller idle, when there is no such card or the card is done.
func (c *Controller) PointerDown(b models.Board, lane models.Status, index, x, y int) bool {
	c.reset()
	if !c.arm(b, lane, index) {
		return false
	}
	c.state = Pending
	c.startX, c.startY = x, y
	return true
}

// PointerMove activates a pending gesture once the pointer has travelled more
// than the threshold along either axis. It reports whether a drag is active afterwards.
func (c *Controller) PointerMove(x, y int) bool {
	if c.state == Pending {
		if max(abs(x-c.startX), abs(y-c.startY)) > c.threshold {
			c.state = Dragging
		}
	}
	return c.state == Dragging
}

// Grab starts a drag immediately, skipping the activation distance. Used by
// keyboard-driven reordering.
func (c *Controller) Grab(b models.Board, lane models.Status, index int) bool {
	c.reset()
	if !c.arm(b, lane, index) {
		return false
	}
	c.state = Dragging
	return true
}

// Hover records the card currently under the pointer. Visual feedback only.
func (c *Controller) Hover(taskID string) {
	if c.state == Dragging {
		c.hoverID = taskID
	}
}

// Drop resolves the gesture against the current board and returns to Idle.
// The board is reordered only when the drop lands on a different card of the
// same lane and both cards are still present; anything else is discarded.
func (c *Controller) Drop(b models.Board, lane models.Status, targetID string) (models.Board, bool) {
	session := c.Session()
	c.reset()

	if session.State != Dragging || lane != session.ActiveLane {
		return b, false
	}

	from := indexOf(b.Lane(lane), session.TaskID)
	to := indexOf(b.Lane(lane), targetID)
	if from < 0 || to < 0 || from == to {
		return b, false
	}

	return board.ReorderWithinLane(b, lane, from, to)
}

// Cancel abandons any gesture without touching the board.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) arm(b models.Board, lane models.Status, index int) bool {
	tasks := b.Lane(lane)
	if index < 0 || index >= len(tasks) {
		return false
	}
	task := tasks[index]
	if r := board.CanDrag(board.StatusContext{TaskID: task.ID, Status: task.Status}); !r.Allowed {
		return false
	}
	c.lane = lane
	c.taskID = task.ID
	c.origin = index
	return true
}

func (c *Controller) reset() {
	*c = Controller{threshold: c.threshold}
}

func indexOf(tasks []models.Task, id string) int {
	if id == "" {
		return -1
	}
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
