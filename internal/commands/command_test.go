package commands

import (
	"errors"
	"testing"
)

func parseErrCode(t *testing.T, input string) ErrorCode {
	t.Helper()
	_, err := Parse(input)
	if err == nil {
		t.Fatalf("expected error for %q", input)
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %T", err)
	}
	return cmdErr.Code
}

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("/add dentist visit date:2025-01-04 time:09:30 event")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil {
		t.Fatalf("expected add command, got %+v", cmd)
	}
	if cmd.Add.Text != "dentist visit" {
		t.Fatalf("expected joined text, got %q", cmd.Add.Text)
	}
	if cmd.Add.Date != "2025-01-04" || cmd.Add.Time != "09:30" || !cmd.Add.Event {
		t.Fatalf("unexpected args %+v", cmd.Add)
	}
}

func TestParseAddFlagsAnywhere(t *testing.T) {
	cmd, err := Parse("add time:07:00 morning run event")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Add.Text != "morning run" || cmd.Add.Time != "07:00" || !cmd.Add.Event {
		t.Fatalf("unexpected args %+v", cmd.Add)
	}
	if cmd.Add.Date != "" {
		t.Fatalf("expected no date, got %q", cmd.Add.Date)
	}
}

func TestParseAddRejections(t *testing.T) {
	cases := []struct {
		input string
		code  ErrorCode
	}{
		{"add", ErrCodeInvalidArgument},
		{"add date:2025-01-04", ErrCodeInvalidArgument},
		{"add walk date:01/04/2025", ErrCodeInvalidArgument},
		{"add walk time:9am", ErrCodeInvalidArgument},
		{"add meeting event", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		if code := parseErrCode(t, tc.input); code != tc.code {
			t.Errorf("%q: expected %s, got %s", tc.input, tc.code, code)
		}
	}
}

func TestParseRemove(t *testing.T) {
	cmd, err := Parse("remove 2025-01-04 09:30 dentist visit")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeRemove || cmd.Remove == nil {
		t.Fatalf("expected remove command, got %+v", cmd)
	}
	r := cmd.Remove
	if r.Date != "2025-01-04" || r.Time != "09:30" || r.Text != "dentist visit" {
		t.Fatalf("unexpected args %+v", r)
	}

	if code := parseErrCode(t, "remove 2025-01-04 09:30"); code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument for missing text, got %s", code)
	}
	if code := parseErrCode(t, "remove someday 09:30 dentist"); code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument for bad date, got %s", code)
	}
}

func TestParseShow(t *testing.T) {
	for _, view := range []string{"today", "upcoming", "progress"} {
		cmd, err := Parse("show " + view)
		if err != nil {
			t.Fatalf("parse show %s: %v", view, err)
		}
		if cmd.Show == nil || cmd.Show.View != view {
			t.Fatalf("expected view %q, got %+v", view, cmd.Show)
		}
	}
	if code := parseErrCode(t, "show calendar"); code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %s", code)
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	if code := parseErrCode(t, "   "); code != ErrCodeEmptyInput {
		t.Fatalf("expected empty_input, got %s", code)
	}
	if code := parseErrCode(t, "/"); code != ErrCodeEmptyInput {
		t.Fatalf("expected empty_input for bare slash, got %s", code)
	}
	if code := parseErrCode(t, "frobnicate now"); code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %s", code)
	}
}

func TestExecuteDispatches(t *testing.T) {
	cmd, err := Parse("add walk the dog")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var got AddArgs
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			got = a
			return Result{Message: "added"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Message != "added" || got.Text != "walk the dog" {
		t.Fatalf("unexpected dispatch: res=%+v args=%+v", res, got)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show today")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
