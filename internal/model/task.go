package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date used for task due dates.
const DateLayout = "2006-01-02"

var (
	ErrEmptyText   = errors.New("model: task text is required")
	ErrEmptyDate   = errors.New("model: task date is required")
	ErrInvalidDate = errors.New("model: invalid task date")
)

type Task struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Label is the list-view rendering of a task.
func (t Task) Label() string {
	return fmt.Sprintf("%s (%s)", t.Text, t.Date)
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if strings.TrimSpace(t.Date) == "" {
		return ErrEmptyDate
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the device-local calendar date of now.
func Today(now time.Time) string {
	return FormatDate(now.Local())
}

// DateOf builds the ISO string for a day within a month.
func DateOf(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
