package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskLabel(t *testing.T) {
	task := Task{Text: "Buy milk", Date: "2024-03-05"}
	if got := task.Label(); got != "Buy milk (2024-03-05)" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestTaskValidate(t *testing.T) {
	if err := (Task{Text: "ok", Date: "2024-01-01"}).Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
	if err := (Task{Text: "   ", Date: "2024-01-01"}).Validate(); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got: %v", err)
	}
	if err := (Task{Text: "ok", Date: " "}).Validate(); !errors.Is(err, ErrEmptyDate) {
		t.Fatalf("expected ErrEmptyDate, got: %v", err)
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("unexpected parsed date: %v", d)
	}
	if FormatDate(d) != "2024-02-29" {
		t.Fatalf("unexpected formatted date: %q", FormatDate(d))
	}

	for _, bad := range []string{"", "2024-2-1", "tomorrow", "2024-13-01"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got: %v", bad, err)
		}
	}
}

func TestTodayAndDateOf(t *testing.T) {
	now := time.Date(2024, 3, 7, 23, 30, 0, 0, time.Local)
	if Today(now) != "2024-03-07" {
		t.Fatalf("unexpected today: %q", Today(now))
	}
	if DateOf(2024, time.March, 7) != "2024-03-07" {
		t.Fatalf("unexpected DateOf: %q", DateOf(2024, time.March, 7))
	}
}
