package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/kanban/internal/core/card"
	"github.com/example/kanban/internal/core/drag"
	"github.com/example/kanban/internal/models"
)

// Styles contains lipgloss styles for the board
type Styles struct {
	Title    lipgloss.Style
	Lane     map[models.Status]lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Dragged  lipgloss.Style
	Hovered  lipgloss.Style
	Muted    lipgloss.Style
	Status   lipgloss.Style
	Warning  lipgloss.Style
	Key      lipgloss.Style
	KeyDesc  lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		Lane: map[models.Status]lipgloss.Style{
			models.StatusTodo:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),  // Cyan
			models.StatusInProgress: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")), // Yellow
			models.StatusDone:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),  // Green
		},
		Card: lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).  // Purple
			Foreground(lipgloss.Color("230")). // Light yellow
			Bold(true),
		Dragged: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Orange
			Bold(true),
		Hovered: lipgloss.NewStyle().
			Underline(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")),
		KeyDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	b := m.service.Board()
	counts := m.service.Counts()
	session := m.service.DragSession()
	width := m.columnWidth()

	columns := make([][]string, len(models.Lanes))
	height := 0
	for i, lane := range models.Lanes {
		columns[i] = m.renderLane(i, lane, b.Lane(lane), counts[lane], session, width)
		if len(columns[i]) > height {
			height = len(columns[i])
		}
	}

	cell := lipgloss.NewStyle().Width(width).MaxWidth(width)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for _, col := range columns {
			line := ""
			if row < len(col) {
				line = col[row]
			}
			sb.WriteString(cell.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter(session))
	return sb.String()
}

// renderLane returns one string per screen row, starting at titleRow.
func (m Model) renderLane(i int, lane models.Status, tasks []models.Task, count int, session drag.Session, width int) []string {
	rows := make([]string, cardTop, cardTop+len(tasks)+1)
	if i == 0 {
		rows[titleRow] = m.styles.Title.Render("Kanban")
	}
	rows[headerRow] = m.styles.Lane[lane].Render(fmt.Sprintf("%s (%d)", lane.Title(), count))
	rows[headerRow+1] = m.styles.Muted.Render(strings.Repeat("─", width-2))

	if len(tasks) == 0 {
		return append(rows, m.styles.Muted.Render("(empty)"))
	}

	for j, t := range tasks {
		selected := i == m.lane && j == m.cursor[i]

		if m.mode == inputEdit && t.ID == m.editing {
			rows = append(rows, "> "+m.input.View())
			continue
		}

		text := truncate(t.Text, width-3)
		style := m.styles.Card
		switch {
		case session.State == drag.Dragging && t.ID == session.TaskID:
			style = m.styles.Dragged
			text = "⇅ " + truncate(t.Text, width-5)
		case session.State == drag.Dragging && t.ID == session.HoverID:
			style = m.styles.Hovered
		case selected:
			style = m.styles.Selected
		}
		rows = append(rows, " "+style.Render(text))
	}
	return rows
}

func (m Model) renderFooter(session drag.Session) string {
	var lines []string

	switch {
	case m.mode == inputAdd:
		lines = append(lines, "New task: "+m.input.View())
	case m.mode == inputEdit:
		lines = append(lines, m.styles.Muted.Render("editing: enter to save, esc to cancel"))
	case session.State == drag.Dragging:
		lines = append(lines, m.styles.Status.Render("moving card: ↑/↓ or drag to choose, space or release to drop, esc to cancel"))
	default:
		if id, ok := m.selectedID(); ok {
			lines = append(lines, m.renderActions(m.service.Actions(id)))
		}
	}

	if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}
	if w := m.service.LastWarning(); w != "" {
		lines = append(lines, m.styles.Warning.Render("warning: "+w))
	}
	lines = append(lines, m.renderHelp())

	return strings.Join(lines, "\n")
}

func (m Model) renderActions(actions []card.ActionState) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		if a.Enabled {
			parts = append(parts, string(a.Action))
		} else {
			parts = append(parts, m.styles.Muted.Render(string(a.Action)))
		}
	}
	return "actions: " + strings.Join(parts, " · ")
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(keys.help()))
	for _, b := range keys.help() {
		h := b.Help()
		parts = append(parts, m.styles.Key.Render(h.Key)+" "+m.styles.KeyDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
