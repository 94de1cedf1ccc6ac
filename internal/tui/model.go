// Package tui is the interactive terminal board. It renders the three lanes
// side by side and translates keys and mouse gestures into BoardService calls.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/core/card"
	"github.com/example/kanban/internal/core/drag"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/primary"
)

// Layout rows. Cards start on cardTop, one row per card.
const (
	titleRow  = 0
	headerRow = 2
	cardTop   = 4

	minColumnWidth = 16
	defaultWidth   = 90
)

// inputMode says what the text input is being used for
type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
)

// Model represents the board TUI state
type Model struct {
	ctx     context.Context
	service primary.BoardService

	// Selection
	lane   int
	cursor [3]int

	// Text entry
	mode    inputMode
	editing string
	input   textinput.Model

	// UI state
	width    int
	height   int
	status   string
	quitting bool

	styles Styles
}

// NewModel creates a board model over an already mounted service.
func NewModel(ctx context.Context, service primary.BoardService) Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 500

	return Model{
		ctx:     ctx,
		service: service,
		input:   input,
		width:   defaultWidth,
		styles:  DefaultStyles(),
	}
}

// Run starts the interactive board and blocks until the user quits.
func Run(ctx context.Context, service primary.BoardService) error {
	p := tea.NewProgram(
		NewModel(ctx, service),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// Init initializes the TUI model (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.columnWidth() - 4
		return m, nil

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mode != inputNone {
			return m, nil
		}
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	dragging := m.service.DragSession().State == drag.Dragging

	switch {
	case key.Matches(msg, keys.Quit):
		m.service.CancelDrag()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel):
		m.service.CancelDrag()

	case key.Matches(msg, keys.Left):
		if !dragging && m.lane > 0 {
			m.lane--
		}

	case key.Matches(msg, keys.Right):
		if !dragging && m.lane < len(models.Lanes)-1 {
			m.lane++
		}

	case key.Matches(msg, keys.Up):
		m.cursor[m.lane]--
		m.clamp()
		m.hoverCursor()

	case key.Matches(msg, keys.Down):
		m.cursor[m.lane]++
		m.clamp()
		m.hoverCursor()

	case key.Matches(msg, keys.Grab):
		m.grabOrDrop()

	case dragging:
		// Other commands wait until the card is dropped.

	case key.Matches(msg, keys.MoveUp):
		m.moveSelected(board.Up)

	case key.Matches(msg, keys.MoveDown):
		m.moveSelected(board.Down)

	case key.Matches(msg, keys.Promote):
		if id, ok := m.selectedID(); ok {
			m.run(card.ActionPromote, id, func() (bool, error) { return m.service.PromoteTask(m.ctx, id) })
			m.followTask(id)
		}

	case key.Matches(msg, keys.Complete):
		if id, ok := m.selectedID(); ok {
			m.run(card.ActionComplete, id, func() (bool, error) { return m.service.CompleteTask(m.ctx, id) })
			m.followTask(id)
		}

	case key.Matches(msg, keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.run(card.ActionDelete, id, func() (bool, error) { return m.service.DeleteTask(m.ctx, id) })
			m.clamp()
		}

	case key.Matches(msg, keys.Edit):
		if id, ok := m.selectedID(); ok && m.service.BeginEdit(id) {
			_, draft := m.service.CardMode(id)
			m.mode = inputEdit
			m.editing = id
			m.input.SetValue(draft)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}

	case key.Matches(msg, keys.Add):
		m.mode = inputAdd
		m.input.SetValue("")
		m.input.Placeholder = "New task"
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		if m.mode == inputEdit {
			m.service.CancelEdit(m.editing)
		}
		m.closeInput()
		return m, nil

	case key.Matches(msg, keys.Submit):
		m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == inputEdit {
		m.service.UpdateDraft(m.editing, m.input.Value())
	}
	return m, cmd
}

func (m *Model) submitInput() {
	switch m.mode {
	case inputAdd:
		task, err := m.service.AddTask(m.ctx, m.input.Value())
		if errors.Is(err, board.ErrEmptyText) {
			m.status = "task text cannot be empty (esc to cancel)"
			return
		}
		if err != nil {
			m.status = err.Error()
			return
		}
		m.lane = 0
		m.followTask(task.ID)
		m.closeInput()

	case inputEdit:
		_, err := m.service.CommitEdit(m.ctx, m.editing)
		if errors.Is(err, card.ErrEmptyDraft) {
			m.status = "task text cannot be empty (esc to cancel)"
			return
		}
		if err != nil {
			m.status = err.Error()
			return
		}
		m.closeInput()
	}
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.editing = ""
	m.input.Blur()
	m.input.SetValue("")
	m.input.Placeholder = ""
	m.clamp()
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.status = ""
		lane, index, ok := m.cardAt(msg.X, msg.Y)
		if !ok {
			return m
		}
		m.lane = laneIndex(lane)
		m.cursor[m.lane] = index
		m.service.PointerDown(lane, index, msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.service.DragSession().State == drag.Idle {
			return m
		}
		if !m.service.PointerMove(msg.X, msg.Y) {
			return m
		}
		m.service.HoverCard(m.targetAt(msg.X, msg.Y))

	case tea.MouseActionRelease:
		session := m.service.DragSession()
		switch session.State {
		case drag.Pending:
			// Released before travelling far enough: a click.
			m.service.CancelDrag()
		case drag.Dragging:
			target := m.targetAt(msg.X, msg.Y)
			changed, err := m.service.DropCard(m.ctx, session.ActiveLane, target)
			if err != nil {
				m.status = err.Error()
			}
			if changed {
				m.followTask(session.TaskID)
			}
		}
	}
	return m
}

// targetAt returns the id of the card under x, y in the active drag lane, or
// "" when the pointer is elsewhere.
func (m Model) targetAt(x, y int) string {
	session := m.service.DragSession()
	lane, index, ok := m.cardAt(x, y)
	if !ok || lane != session.ActiveLane {
		return ""
	}
	return m.service.Board().Lane(lane)[index].ID
}

// cardAt maps a terminal cell to the card rendered there.
func (m Model) cardAt(x, y int) (models.Status, int, bool) {
	if x < 0 || y < cardTop {
		return "", 0, false
	}
	col := x / m.columnWidth()
	if col >= len(models.Lanes) {
		return "", 0, false
	}
	lane := models.Lanes[col]
	index := y - cardTop
	if index >= len(m.service.Board().Lane(lane)) {
		return "", 0, false
	}
	return lane, index, true
}

func (m *Model) grabOrDrop() {
	session := m.service.DragSession()
	if session.State == drag.Dragging {
		target, _ := m.selectedID()
		changed, err := m.service.DropCard(m.ctx, session.ActiveLane, target)
		if err != nil {
			m.status = err.Error()
		}
		if changed {
			m.followTask(session.TaskID)
		}
		return
	}

	lane := models.Lanes[m.lane]
	if !m.service.GrabCard(lane, m.cursor[m.lane]) {
		if id, ok := m.selectedID(); ok {
			if lane == models.StatusDone {
				m.status = fmt.Sprintf("task %s is done and cannot be dragged", shortID(id))
			}
		}
	}
}

func (m *Model) hoverCursor() {
	if m.service.DragSession().State != drag.Dragging {
		return
	}
	id, _ := m.selectedID()
	m.service.HoverCard(id)
}

func (m *Model) moveSelected(dir board.Direction) {
	id, ok := m.selectedID()
	if !ok {
		return
	}
	action := card.ActionMoveUp
	if dir == board.Down {
		action = card.ActionMoveDown
	}
	m.run(action, id, func() (bool, error) { return m.service.MoveTask(m.ctx, id, dir) })
	m.followTask(id)
}

// run performs a card action, reporting why when it is a no-op.
func (m *Model) run(action card.Action, id string, do func() (bool, error)) {
	reason := card.Explain(m.service.Board(), id, action)
	changed, err := do()
	switch {
	case err != nil:
		m.status = err.Error()
	case !changed && reason != "":
		m.status = reason
	}
}

// followTask moves the selection onto the task wherever it now lives.
func (m *Model) followTask(id string) {
	_, status, index, ok := m.service.Board().Find(id)
	if !ok {
		m.clamp()
		return
	}
	m.lane = laneIndex(status)
	m.cursor[m.lane] = index
}

func (m Model) selectedID() (string, bool) {
	tasks := m.service.Board().Lane(models.Lanes[m.lane])
	i := m.cursor[m.lane]
	if i < 0 || i >= len(tasks) {
		return "", false
	}
	return tasks[i].ID, true
}

func (m *Model) clamp() {
	b := m.service.Board()
	for i, lane := range models.Lanes {
		n := len(b.Lane(lane))
		if m.cursor[i] >= n {
			m.cursor[i] = n - 1
		}
		if m.cursor[i] < 0 {
			m.cursor[i] = 0
		}
	}
}

func (m Model) columnWidth() int {
	w := m.width / len(models.Lanes)
	if w < minColumnWidth {
		return minColumnWidth
	}
	return w
}

func laneIndex(s models.Status) int {
	for i, l := range models.Lanes {
		if l == s {
			return i
		}
	}
	return 0
}
