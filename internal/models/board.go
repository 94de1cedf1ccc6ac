package models

// Board holds the three ordered lanes. Order within a lane is the on-screen
// order, top to bottom.
type Board struct {
	Todo       []Task `json:"todo" yaml:"todo"`
	InProgress []Task `json:"inprogress" yaml:"inprogress"`
	Done       []Task `json:"done" yaml:"done"`
}

// NewBoard returns a board with three empty, non-nil lanes.
func NewBoard() Board {
	return Board{
		Todo:       []Task{},
		InProgress: []Task{},
		Done:       []Task{},
	}
}

// Lane returns the tasks of the given lane. The slice is shared with the board.
func (b Board) Lane(s Status) []Task {
	switch s {
	case StatusTodo:
		return b.Todo
	case StatusInProgress:
		return b.InProgress
	case StatusDone:
		return b.Done
	}
	return nil
}

// WithLane returns a copy of b whose lane s is replaced by tasks.
func (b Board) WithLane(s Status, tasks []Task) Board {
	switch s {
	case StatusTodo:
		b.Todo = tasks
	case StatusInProgress:
		b.InProgress = tasks
	case StatusDone:
		b.Done = tasks
	}
	return b
}

// Find locates a task by id.
func (b Board) Find(id string) (Task, Status, int, bool) {
	for _, lane := range Lanes {
		for i, t := range b.Lane(lane) {
			if t.ID == id {
				return t, lane, i, true
			}
		}
	}
	return Task{}, "", -1, false
}

// Len returns the number of tasks across all lanes.
func (b Board) Len() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Done)
}

// Clone returns a deep copy with non-nil lanes.
func (b Board) Clone() Board {
	return Board{
		Todo:       append([]Task{}, b.Todo...),
		InProgress: append([]Task{}, b.InProgress...),
		Done:       append([]Task{}, b.Done...),
	}
}
