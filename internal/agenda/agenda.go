// Package agenda derives the read-only views of a task sequence: completion
// progress, the upcoming shortlist and per-day listings.
package agenda

import (
	"math"
	"sort"

	"github.com/sandeepkv93/taskcal/internal/model"
)

// UpcomingLimit is how many urgent tasks the dashboard shows.
const UpcomingLimit = 3

// Progress returns the rounded percentage of completed tasks, 0 when there
// are none.
func Progress(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Floor(float64(done)*100/float64(len(tasks)) + 0.5))
}

// Upcoming returns open tasks dated today or later, earliest first, capped at
// limit. Dates compare as strings, which is chronological for YYYY-MM-DD.
func Upcoming(tasks []model.Task, today string, limit int) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed && t.Date >= today {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// OnDate lists every task due on date in store order.
func OnDate(tasks []model.Task, date string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// OpenDates is the set of dates carrying at least one open task.
func OpenDates(tasks []model.Task) map[string]bool {
	out := make(map[string]bool)
	for _, t := range tasks {
		if !t.Completed {
			out[t.Date] = true
		}
	}
	return out
}

func CompletedCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
