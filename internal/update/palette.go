package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/sandeepkv93/taskcal/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.reportError(err.Error(), err)
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, ok, err := m.store.Add(m.ctx, a.Text, a.Date)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "text and date are required"}
			}
			if err != nil {
				return commands.Result{}, fmt.Errorf("add not saved: %w", err)
			}
			return commands.Result{Message: fmt.Sprintf("added: %s", task.Label())}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			idx, ok := m.store.FindFirst(d.Text, d.Date)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task %q on %s", d.Text, d.Date)}
			}
			if m.store.Tasks()[idx].Completed {
				return commands.Result{Message: fmt.Sprintf("already done: %s", d.Text)}, nil
			}
			task, err := m.store.Toggle(m.ctx, idx)
			m, follow = m.startCelebration()
			if err != nil {
				return commands.Result{}, fmt.Errorf("toggle not saved: %w", err)
			}
			return commands.Result{Message: fmt.Sprintf("completed: %s", task.Label())}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			d, err := model.ParseDate(s.Date)
			if err != nil {
				return commands.Result{}, err
			}
			if !m.Month.Contains(s.Date) {
				m.setMonth(calendar.CursorFor(d))
			}
			m.SelectedDay = d.Day()
			m = m.openOverlay(s.Date)
			return commands.Result{Message: fmt.Sprintf("tasks for %s", s.Date)}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			m.setMonth(calendar.Cursor{Month: g.Month, Year: g.Year})
			m.Focus = PaneCalendar
			return commands.Result{Message: fmt.Sprintf("calendar: %s", m.Month.Title())}, nil
		},
		Today: func() (commands.Result, error) {
			m.jumpToToday()
			m.Focus = PaneCalendar
			return commands.Result{Message: fmt.Sprintf("today: %s", m.today())}, nil
		},
	})
	if err != nil {
		m.reportError(err.Error(), err)
		return m, follow
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, follow
}
