package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	todayStyle     = lipgloss.NewStyle().Reverse(true)
	hasTaskStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12"))
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).Width(38)
	focusedMarker  = "▸ "
	unfocusedTitle = "  "
)

type TaskItemData struct {
	Label     string
	Completed bool
}

type TaskListData struct {
	Items   []TaskItemData
	Cursor  int
	Focused bool
}

type ProgressData struct {
	BarView string
	Percent int
	Done    int
	Total   int
}

type CalendarCellData struct {
	Day     int
	HasTask bool
	Today   bool
}

type CalendarPanelData struct {
	Title       string
	Weekdays    []string
	Weeks       [][]*CalendarCellData
	SelectedDay int
	Focused     bool
}

type OverlayItemData struct {
	Text      string
	Completed bool
}

type DayOverlayData struct {
	Date   string
	Items  []OverlayItemData
	Cursor int
}

type AddFormData struct {
	TextView string
	DateView string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Cheats   string
}

func paneTitle(title string, focused bool) string {
	if focused {
		return cursorStyle.Render(focusedMarker + title)
	}
	return titleStyle.Render(unfocusedTitle + title)
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString(paneTitle("Tasks", data.Focused) + "\n")
	if len(data.Items) == 0 {
		b.WriteString(mutedStyle.Render("  (no tasks yet, press a to add one)"))
		return b.String()
	}
	for i, item := range data.Items {
		cursor := "  "
		if data.Focused && i == data.Cursor {
			cursor = "> "
		}
		check := "[ ] "
		label := item.Label
		if item.Completed {
			check = "[x] "
			label = doneStyle.Render(label)
		}
		b.WriteString(cursor + check + label + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderProgress(data ProgressData) string {
	return fmt.Sprintf("%s\n%s %3d%% (%d/%d)", titleStyle.Render("  Progress"), data.BarView, data.Percent, data.Done, data.Total)
}

func RenderUpcoming(labels []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  Upcoming") + "\n")
	if len(labels) == 0 {
		b.WriteString(mutedStyle.Render("  No urgent tasks"))
		return b.String()
	}
	for _, l := range labels {
		b.WriteString("  - " + l + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(paneTitle(data.Title, data.Focused) + "\n")
	for _, wd := range data.Weekdays {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %-2s ", wd)))
	}
	b.WriteString("\n")
	for _, week := range data.Weeks {
		for _, cell := range week {
			if cell == nil {
				b.WriteString("    ")
				continue
			}
			b.WriteString(renderDayCell(*cell, data.Focused && cell.Day == data.SelectedDay))
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("* open tasks  [/] month  enter day"))
	return b.String()
}

func renderDayCell(cell CalendarCellData, selected bool) string {
	marker := " "
	if cell.HasTask {
		marker = "*"
	}
	text := fmt.Sprintf("%2d", cell.Day)
	style := lipgloss.NewStyle()
	switch {
	case selected:
		style = selectedStyle
	case cell.HasTask:
		style = hasTaskStyle
	}
	if cell.Today {
		style = style.Inherit(todayStyle)
	}
	return " " + style.Render(text) + marker
}

func RenderDayOverlay(data DayOverlayData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Tasks for %s", data.Date)) + "\n")
	if len(data.Items) == 0 {
		b.WriteString(mutedStyle.Render("No tasks for this day") + "\n")
	}
	for i, item := range data.Items {
		cursor := "  "
		if i == data.Cursor {
			cursor = "> "
		}
		if item.Completed {
			b.WriteString(cursor + doneStyle.Render(item.Text+" (done)") + "\n")
			continue
		}
		b.WriteString(cursor + item.Text + "\n")
	}
	b.WriteString(mutedStyle.Render("enter toggle | esc close"))
	return overlayStyle.Render(b.String())
}

func RenderAddForm(data AddFormData) string {
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		titleStyle.Render("  New task"),
		data.TextView,
		data.DateView,
		mutedStyle.Render("tab switch | enter save | esc cancel"),
	)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
		data.Cheats,
	)
}
