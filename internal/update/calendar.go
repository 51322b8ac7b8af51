package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "[", "p":
		m.setMonth(m.Month.Prev())
	case "]", "n":
		m.setMonth(m.Month.Next())
	case "left", "h":
		m.moveDay(-1)
	case "right", "l":
		m.moveDay(1)
	case "up", "k":
		m.moveDay(-7)
	case "down", "j":
		m.moveDay(7)
	case "t":
		m.jumpToToday()
	case "enter":
		return m.openOverlay(m.selectedDate()), nil
	}
	return m, nil
}

// moveDay shifts the selection inside the shown month. Moves that would
// leave the month are ignored.
func (m *Model) moveDay(delta int) {
	grid := calendar.Build(m.Month, m.store.Tasks(), m.today())
	cell, ok := grid.Cell(m.SelectedDay + delta)
	if !ok {
		return
	}
	m.SelectedDay = cell.Day
	if cell.HasTask {
		m.Status = StatusBar{Text: fmt.Sprintf("%s has open tasks", cell.Date)}
	}
}

// setMonth moves the calendar and clamps the selected day to the month length.
func (m *Model) setMonth(c calendar.Cursor) {
	m.Month = c
	if days := calendar.DaysIn(c.Year, c.Month); m.SelectedDay > days {
		m.SelectedDay = days
	}
	if m.SelectedDay < 1 {
		m.SelectedDay = 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("calendar: %s", c.Title())}
}

func (m *Model) jumpToToday() {
	now := m.now()
	m.setMonth(calendar.CursorFor(now))
	m.SelectedDay = now.Day()
}

func (m Model) selectedDate() string {
	return model.DateOf(m.Month.Year, m.Month.Month, m.SelectedDay)
}
