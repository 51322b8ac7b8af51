// Package calendar lays out a Monday-first month grid and marks the days
// that carry open tasks.
package calendar

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/taskcal/internal/agenda"
	"github.com/sandeepkv93/taskcal/internal/model"
)

// Weekdays are the column headers, Monday first.
var Weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Cursor is the month on display.
type Cursor struct {
	Month time.Month
	Year  int
}

func CursorFor(t time.Time) Cursor {
	return Cursor{Month: t.Month(), Year: t.Year()}
}

func (c Cursor) Prev() Cursor {
	if c.Month == time.January {
		return Cursor{Month: time.December, Year: c.Year - 1}
	}
	return Cursor{Month: c.Month - 1, Year: c.Year}
}

func (c Cursor) Next() Cursor {
	if c.Month == time.December {
		return Cursor{Month: time.January, Year: c.Year + 1}
	}
	return Cursor{Month: c.Month + 1, Year: c.Year}
}

func (c Cursor) Title() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

// Contains reports whether the ISO date falls inside the cursor month.
func (c Cursor) Contains(date string) bool {
	return len(date) >= 7 && date[:7] == fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

// LeadingBlanks is the number of empty cells before the 1st in a week that
// starts on Monday.
func LeadingBlanks(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// DaysIn counts the days of month by asking for day 0 of the next month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

type DayCell struct {
	Day     int
	Date    string
	HasTask bool
	Today   bool
}

type Grid struct {
	Cursor  Cursor
	Leading int
	Days    []DayCell
}

// Build derives the grid for cursor from the full task list. today is the
// device date as YYYY-MM-DD.
func Build(c Cursor, tasks []model.Task, today string) Grid {
	open := agenda.OpenDates(tasks)
	n := DaysIn(c.Year, c.Month)
	g := Grid{
		Cursor:  c,
		Leading: LeadingBlanks(c.Year, c.Month),
		Days:    make([]DayCell, 0, n),
	}
	for day := 1; day <= n; day++ {
		date := model.DateOf(c.Year, c.Month, day)
		g.Days = append(g.Days, DayCell{
			Day:     day,
			Date:    date,
			HasTask: open[date],
			Today:   date == today,
		})
	}
	return g
}

// Weeks splits the grid into rows of seven; nil entries are blank cells.
func (g Grid) Weeks() [][]*DayCell {
	cells := make([]*DayCell, 0, g.Leading+len(g.Days))
	for i := 0; i < g.Leading; i++ {
		cells = append(cells, nil)
	}
	for i := range g.Days {
		cells = append(cells, &g.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	weeks := make([][]*DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Cell returns the cell for a day number, if it exists in the month.
func (g Grid) Cell(day int) (DayCell, bool) {
	if day < 1 || day > len(g.Days) {
		return DayCell{}, false
	}
	return g.Days[day-1], true
}
