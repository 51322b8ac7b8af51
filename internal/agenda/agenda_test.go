package agenda

import (
	"testing"

	"github.com/sandeepkv93/taskcal/internal/model"
)

func TestProgress(t *testing.T) {
	cases := []struct {
		name  string
		tasks []model.Task
		want  int
	}{
		{name: "empty", tasks: nil, want: 0},
		{name: "half", tasks: []model.Task{{Completed: true}, {}}, want: 50},
		{name: "third", tasks: []model.Task{{Completed: true}, {}, {}}, want: 33},
		{name: "two thirds", tasks: []model.Task{{Completed: true}, {Completed: true}, {}}, want: 67},
		{name: "all", tasks: []model.Task{{Completed: true}}, want: 100},
		{name: "none done", tasks: []model.Task{{}, {}}, want: 0},
		{name: "one of eight", tasks: []model.Task{{Completed: true}, {}, {}, {}, {}, {}, {}, {}}, want: 13},
	}
	for _, tc := range cases {
		if got := Progress(tc.tasks); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestUpcoming(t *testing.T) {
	tasks := []model.Task{
		{Text: "done", Date: "2024-01-01", Completed: true},
		{Text: "e", Date: "2024-01-05"},
		{Text: "c", Date: "2024-01-03"},
		{Text: "j", Date: "2024-01-10"},
		{Text: "b", Date: "2024-01-02"},
	}
	got := Upcoming(tasks, "2024-01-02", UpcomingLimit)
	want := []string{"2024-01-02", "2024-01-03", "2024-01-05"}
	if len(got) != len(want) {
		t.Fatalf("expected %d upcoming tasks, got %#v", len(want), got)
	}
	for i := range want {
		if got[i].Date != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].Date)
		}
	}
}

func TestUpcomingExcludesPastAndCompleted(t *testing.T) {
	tasks := []model.Task{
		{Text: "past", Date: "2023-12-31"},
		{Text: "done today", Date: "2024-01-02", Completed: true},
	}
	if got := Upcoming(tasks, "2024-01-02", UpcomingLimit); len(got) != 0 {
		t.Fatalf("expected no upcoming tasks, got %#v", got)
	}
}

func TestUpcomingKeepsStoreOrderForSameDate(t *testing.T) {
	tasks := []model.Task{
		{Text: "first", Date: "2024-01-04"},
		{Text: "second", Date: "2024-01-04"},
	}
	got := Upcoming(tasks, "2024-01-01", UpcomingLimit)
	if got[0].Text != "first" || got[1].Text != "second" {
		t.Fatalf("expected stable order, got %#v", got)
	}
}

func TestOnDateAndOpenTasks(t *testing.T) {
	tasks := []model.Task{
		{Text: "a", Date: "2024-03-01", Completed: true},
		{Text: "b", Date: "2024-03-02"},
		{Text: "c", Date: "2024-03-01"},
	}
	day := OnDate(tasks, "2024-03-01")
	if len(day) != 2 || day[0].Text != "a" || day[1].Text != "c" {
		t.Fatalf("unexpected day listing: %#v", day)
	}
	if OpenDates(tasks[:1])["2024-03-01"] {
		t.Fatal("completed task must not count as open")
	}
	open := OpenDates(tasks)
	if len(open) != 2 || !open["2024-03-01"] || !open["2024-03-02"] {
		t.Fatalf("unexpected open dates: %v", open)
	}
	if CompletedCount(tasks) != 1 {
		t.Fatalf("unexpected completed count: %d", CompletedCount(tasks))
	}
}
