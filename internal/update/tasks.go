package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/store"
)

func (m Model) handleTaskListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.TaskCursor > 0 {
			m.TaskCursor--
		}
	case "down", "j":
		if m.TaskCursor < m.store.Len()-1 {
			m.TaskCursor++
		}
	case "enter", " ":
		if m.store.Len() == 0 {
			return m, nil
		}
		task, err := m.store.Toggle(m.ctx, m.TaskCursor)
		return m.applyToggle(task, err)
	}
	return m, nil
}

// applyToggle reports the outcome of a store toggle and fires the
// celebration on a false to true transition.
func (m Model) applyToggle(task model.Task, err error) (Model, tea.Cmd) {
	if errors.Is(err, store.ErrIndexOutOfRange) || errors.Is(err, store.ErrTaskNotFound) {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	switch {
	case err != nil:
		m.persistFailed("toggle", err)
	case task.Completed:
		m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", task.Label())}
	default:
		m.Status = StatusBar{Text: fmt.Sprintf("reopened: %s", task.Label())}
	}
	if task.Completed {
		return m.startCelebration()
	}
	return m, nil
}

func (m *Model) clampTaskCursor() {
	if m.TaskCursor >= m.store.Len() {
		m.TaskCursor = m.store.Len() - 1
	}
	if m.TaskCursor < 0 {
		m.TaskCursor = 0
	}
}
