package commands

import (
	"errors"
	"testing"
)

func TestExecuteDispatches(t *testing.T) {
	var gotAdd AddArgs
	handlers := Handlers{
		Add: func(a AddArgs) (Result, error) {
			gotAdd = a
			return Result{Message: "added"}, nil
		},
		Today: func() (Result, error) { return Result{Message: "today"}, nil },
	}

	cmd, _ := Parse("add 2024-01-02 write report")
	res, err := Execute(cmd, handlers)
	if err != nil || res.Message != "added" {
		t.Fatalf("unexpected add result: %+v %v", res, err)
	}
	if gotAdd.Text != "write report" || gotAdd.Date != "2024-01-02" {
		t.Fatalf("unexpected handler args: %+v", gotAdd)
	}

	cmd, _ = Parse("today")
	if res, err := Execute(cmd, handlers); err != nil || res.Message != "today" {
		t.Fatalf("unexpected today result: %+v %v", res, err)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, _ := Parse("show 2024-01-02")
	_, err := Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler missing error, got %v", err)
	}
}
