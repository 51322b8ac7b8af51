package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/taskcal/internal/model"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeDone  Type = "done"
	TypeShow  Type = "show"
	TypeGoto  Type = "goto"
	TypeToday Type = "today"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Date string
	Text string
}

// DoneArgs addresses the first task with this exact text and date.
type DoneArgs struct {
	Date string
	Text string
}

type ShowArgs struct {
	Date string
}

type GotoArgs struct {
	Month time.Month
	Year  int
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Done *DoneArgs
	Show *ShowArgs
	Goto *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseDateAndText(verb string, args []string) (string, string, error) {
	if len(args) < 2 {
		return "", "", &CommandError{Code: ErrCodeInvalidArgument, Message: verb + " requires a date and text"}
	}
	if _, err := model.ParseDate(args[0]); err != nil {
		return "", "", &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad date %q, want YYYY-MM-DD", args[0])}
	}
	return args[0], strings.Join(args[1:], " "), nil
}

func parseAdd(raw string, args []string) (Command, error) {
	date, text, err := parseDateAndText("add", args)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Date: date, Text: text}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	date, text, err := parseDateAndText("done", args)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Date: date, Text: text}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a date"}
	}
	if _, err := model.ParseDate(args[0]); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad date %q, want YYYY-MM-DD", args[0])}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Date: args[0]}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a month"}
	}
	m, err := time.Parse("2006-01", args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad month %q, want YYYY-MM", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Month: m.Month(), Year: m.Year()}}, nil
}
