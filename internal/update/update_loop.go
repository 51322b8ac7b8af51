package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

const statusTTL = 4 * time.Second

// Update schedules a ClearStatusMsg whenever a message leaves a new
// non-error status behind.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if next.Status != m.Status && next.Status.Text != "" && !next.Status.IsError {
		next.statusSeq++
		cmd = tea.Batch(cmd, clearStatusAfter(next.statusSeq))
	}
	return next, cmd
}

func clearStatusAfter(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			if typed.String() == m.Keys.Help && m.commandInput.Value() == "" {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}
		if m.Form.Active {
			return m.handleFormKey(typed)
		}
		if m.Overlay.Active {
			return m.handleOverlayKey(typed)
		}

		switch typed.String() {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.AddTask:
			return m.openForm()
		case m.Keys.SwitchPane:
			if m.Focus == PaneTasks {
				m.Focus = PaneCalendar
			} else {
				m.Focus = PaneTasks
			}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Focus == PaneCalendar {
			return m.handleCalendarKey(typed)
		}
		return m.handleTaskListKey(typed)
	case ReloadMsg:
		if m.store.Unsaved() {
			m.logger.Warn("reload skipped, memory holds unsaved changes")
			return m, nil
		}
		if err := m.store.Load(m.ctx); err != nil {
			m.reportError(fmt.Sprintf("reload failed: %v", err), err)
			return m, nil
		}
		m.logger.Debug("store reloaded", "count", m.store.Len())
		m.clampTaskCursor()
		m.clampOverlayCursor()
		return m, nil
	case FrameMsg:
		return m.onFrame(typed)
	case ClearStatusMsg:
		if typed.ID == m.statusSeq && !m.Status.IsError {
			m.Status = StatusBar{}
		}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.reportError(typed.Err.Error(), typed.Err)
		}
		return m, nil
	}

	return m, nil
}

// persistFailed records a save error. The in-memory change is kept.
func (m *Model) persistFailed(action string, err error) {
	m.reportError(fmt.Sprintf("%s not saved: %v", action, err), err)
}

// reportError is where every failure reaches the status bar.
func (m *Model) reportError(text string, err error) {
	m.LastError = err
	m.logger.Error(text, "err", err)
	m.Status = StatusBar{Text: text, IsError: true}
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	tasks := m.store.Tasks()
	left := []string{
		m.renderTaskList(tasks),
		m.renderProgress(tasks),
		m.renderUpcoming(tasks),
	}
	if m.Form.Active {
		left = append(left, m.renderAddForm())
	}
	right := []string{m.renderCalendar(tasks)}
	if m.Overlay.Active {
		right = append(right, m.renderDayOverlay(tasks))
	}
	if p := m.renderCommandPalette(); p != "" {
		right = append(right, p)
	}
	if h := m.renderHelpIfVisible(); h != "" {
		right = append(right, h)
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("taskcal | focus: %s | today: %s", m.Focus, m.today()),
		LeftPane:     strings.Join(left, "\n\n"),
		RightPane:    strings.Join(right, "\n\n"),
		StatusLine:   status,
		Notification: m.renderCelebration(),
		Footer: fmt.Sprintf("keys: %s add | %s switch pane | %s cmd | %s help | %s quit",
			m.Keys.AddTask, m.Keys.SwitchPane, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
