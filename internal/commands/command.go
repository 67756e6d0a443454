package commands

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeRemove Type = "remove"
	TypeShow   Type = "show"
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

// AddArgs carries a task to create. Date and Time are optional;
// Event marks the entry as a timed event.
type AddArgs struct {
	Text  string
	Date  string
	Time  string
	Event bool
}

// RemoveArgs identifies an upcoming event by its (date, time, text)
// triple; removal across the whole log works by value, not index.
type RemoveArgs struct {
	Date string
	Time string
	Text string
}

type ShowArgs struct {
	View string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Remove *RemoveArgs
	Show   *ShowArgs
}

// Parse understands:
//
//	add <text> [date:YYYY-MM-DD] [time:HH:MM] [event]
//	remove <date> <HH:MM> <text>
//	show today|upcoming|progress
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
	case TypeRemove:
		return parseRemove(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	out := AddArgs{}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "date:"):
			value := strings.TrimSpace(arg[len("date:"):])
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad date %q, want YYYY-MM-DD", value)}
			}
			out.Date = value
		case strings.HasPrefix(lower, "time:"):
			value := strings.TrimSpace(arg[len("time:"):])
			if _, err := time.Parse("15:04", value); err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad time %q, want HH:MM", value)}
			}
			out.Time = value
		case lower == "event":
			out.Event = true
		default:
			words = append(words, arg)
		}
	}
	out.Text = strings.TrimSpace(strings.Join(words, " "))
	if out.Text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	if out.Event && out.Time == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event requires time:HH:MM"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseRemove(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "remove requires date, time and text"}
	}
	date, clock := args[0], args[1]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad date %q, want YYYY-MM-DD", date)}
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad time %q, want HH:MM", clock)}
	}
	text := strings.TrimSpace(strings.Join(args[2:], " "))
	return Command{Type: TypeRemove, Raw: raw, Remove: &RemoveArgs{Date: date, Time: clock, Text: text}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a view"}
	}
	view := strings.ToLower(args[0])
	switch view {
	case "today", "upcoming", "progress":
		return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{View: view}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", view)}
	}
}
