package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/model"
)

func (m Model) openForm() (Model, tea.Cmd) {
	m.Form = FormState{Active: true, Field: FieldText}
	m.textInput.SetValue("")
	m.dateInput.SetValue(m.selectedDate())
	m.dateInput.Blur()
	m.Status = StatusBar{Text: "new task"}
	cmd := m.textInput.Focus()
	return m, cmd
}

func (m Model) closeForm() Model {
	m.Form = FormState{}
	m.textInput.SetValue("")
	m.dateInput.SetValue("")
	m.textInput.Blur()
	m.dateInput.Blur()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closeForm()
		m.Status = StatusBar{Text: "add cancelled"}
		return m, nil
	case "tab", "shift+tab":
		if m.Form.Field == FieldText {
			m.Form.Field = FieldDate
			m.textInput.Blur()
			cmd := m.dateInput.Focus()
			return m, cmd
		}
		m.Form.Field = FieldText
		m.dateInput.Blur()
		cmd := m.textInput.Focus()
		return m, cmd
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.Form.Field == FieldDate {
		m.dateInput, cmd = m.dateInput.Update(msg)
	} else {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

// submitForm adds the task. Blank fields leave the form open without a
// message, a malformed date is reported the way a date picker would refuse it.
func (m Model) submitForm() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.textInput.Value())
	date := strings.TrimSpace(m.dateInput.Value())
	if text == "" || date == "" {
		return m, nil
	}
	if _, err := model.ParseDate(date); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("date must be YYYY-MM-DD: %s", date), IsError: true}
		return m, nil
	}
	task, ok, err := m.store.Add(m.ctx, text, date)
	if !ok {
		return m, nil
	}
	m = m.closeForm()
	if err != nil {
		m.persistFailed("add", err)
		return m, nil
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Label())}
	return m, textinput.Blink
}
