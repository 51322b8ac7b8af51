package update

import (
	"github.com/sandeepkv93/taskcal/internal/agenda"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/views"
)

func (m Model) renderTaskList(tasks []model.Task) string {
	items := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, views.TaskItemData{Label: t.Label(), Completed: t.Completed})
	}
	return views.RenderTaskList(views.TaskListData{
		Items:   items,
		Cursor:  m.TaskCursor,
		Focused: m.Focus == PaneTasks && !m.Overlay.Active,
	})
}

func (m Model) renderProgress(tasks []model.Task) string {
	pct := agenda.Progress(tasks)
	return views.RenderProgress(views.ProgressData{
		BarView: m.progressBar.ViewAs(float64(pct) / 100),
		Percent: pct,
		Done:    agenda.CompletedCount(tasks),
		Total:   len(tasks),
	})
}

func (m Model) renderUpcoming(tasks []model.Task) string {
	upcoming := agenda.Upcoming(tasks, m.today(), m.cfg.UpcomingLimit)
	labels := make([]string, 0, len(upcoming))
	for _, t := range upcoming {
		labels = append(labels, t.Label())
	}
	return views.RenderUpcoming(labels)
}

func (m Model) renderCalendar(tasks []model.Task) string {
	grid := calendar.Build(m.Month, tasks, m.today())
	weeks := make([][]*views.CalendarCellData, 0, 6)
	for _, week := range grid.Weeks() {
		row := make([]*views.CalendarCellData, 0, len(week))
		for _, cell := range week {
			if cell == nil {
				row = append(row, nil)
				continue
			}
			row = append(row, &views.CalendarCellData{Day: cell.Day, HasTask: cell.HasTask, Today: cell.Today})
		}
		weeks = append(weeks, row)
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Title:       m.Month.Title(),
		Weekdays:    calendar.Weekdays,
		Weeks:       weeks,
		SelectedDay: m.SelectedDay,
		Focused:     m.Focus == PaneCalendar,
	})
}

func (m Model) renderDayOverlay(tasks []model.Task) string {
	day := agenda.OnDate(tasks, m.Overlay.Date)
	items := make([]views.OverlayItemData, 0, len(day))
	for _, t := range day {
		items = append(items, views.OverlayItemData{Text: t.Text, Completed: t.Completed})
	}
	return views.RenderDayOverlay(views.DayOverlayData{
		Date:   m.Overlay.Date,
		Items:  items,
		Cursor: m.Overlay.Cursor,
	})
}

func (m Model) renderAddForm() string {
	return views.RenderAddForm(views.AddFormData{
		TextView: m.textInput.View(),
		DateView: m.dateInput.View(),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
