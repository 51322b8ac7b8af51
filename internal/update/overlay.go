package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/agenda"
	"github.com/sandeepkv93/taskcal/internal/model"
)

func (m Model) openOverlay(date string) Model {
	m.Overlay = OverlayState{Active: true, Date: date}
	return m
}

func (m Model) overlayTasks() []model.Task {
	return agenda.OnDate(m.store.Tasks(), m.Overlay.Date)
}

// handleOverlayKey never closes the overlay on its own; only esc or x do.
func (m Model) handleOverlayKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	items := m.overlayTasks()
	switch msg.String() {
	case "esc", "x":
		m.Overlay = OverlayState{}
		return m, nil
	case "up", "k":
		if m.Overlay.Cursor > 0 {
			m.Overlay.Cursor--
		}
	case "down", "j":
		if m.Overlay.Cursor < len(items)-1 {
			m.Overlay.Cursor++
		}
	case "enter", " ":
		if m.Overlay.Cursor < 0 || m.Overlay.Cursor >= len(items) {
			return m, nil
		}
		task, err := m.store.ToggleByID(m.ctx, items[m.Overlay.Cursor].ID)
		return m.applyToggle(task, err)
	}
	return m, nil
}

func (m *Model) clampOverlayCursor() {
	if !m.Overlay.Active {
		return
	}
	n := len(m.overlayTasks())
	if m.Overlay.Cursor >= n {
		m.Overlay.Cursor = n - 1
	}
	if m.Overlay.Cursor < 0 {
		m.Overlay.Cursor = 0
	}
}
