package commands

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeMove   Type = "move"
	TypeShare  Type = "share"
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

type AddArgs struct {
	Name string
	List string
	Due  *time.Time
	Tone string
}

type DoneArgs struct {
	ID string
}

type DeleteArgs struct {
	ID string
}

type MoveArgs struct {
	ID    string
	Stage string
}

type ShareArgs struct {
	Key   string
	Board bool
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *DoneArgs
	Delete *DeleteArgs
	Move   *MoveArgs
	Share  *ShareArgs
	Show   *ShowArgs
}

// Parse turns a palette line into a command. A leading slash is
// accepted and ignored.
func Parse(input string, now time.Time) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args, now)
	case TypeDone:
		return parseID(input, TypeDone, args)
	case TypeDelete:
		return parseID(input, TypeDelete, args)
	case TypeMove:
		return parseMove(input, args)
	case TypeShare:
		return parseShare(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd handles `add <name words> [@list] [due:<when>] [tone:<name>]`.
// The @list, due: and tone: markers may appear anywhere after the verb;
// everything else joins into the task name.
func parseAdd(raw string, args []string, now time.Time) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}

	out := AddArgs{}
	var nameParts []string
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(arg, "@"):
			out.List = strings.TrimPrefix(lower, "@")
		case strings.HasPrefix(lower, "due:"):
			due, err := parseWhen(strings.TrimPrefix(arg, "due:"), now)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
			out.Due = &due
		case strings.HasPrefix(lower, "tone:"):
			out.Tone = strings.TrimPrefix(lower, "tone:")
		default:
			nameParts = append(nameParts, arg)
		}
	}
	out.Name = strings.Join(nameParts, " ")
	if out.Name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseID(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one id", t)}
	}
	switch t {
	case TypeDone:
		return Command{Type: t, Raw: raw, Done: &DoneArgs{ID: args[0]}}, nil
	default:
		return Command{Type: t, Raw: raw, Delete: &DeleteArgs{ID: args[0]}}, nil
	}
}

func parseMove(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "move requires an id and a stage"}
	}
	return Command{Type: TypeMove, Raw: raw, Move: &MoveArgs{ID: args[0], Stage: strings.ToLower(args[1])}}, nil
}

func parseShare(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "share requires a list or board key"}
	}
	out := ShareArgs{Key: strings.ToLower(args[0])}
	if len(args) > 1 {
		if strings.ToLower(args[1]) != "board" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "share accepts only 'board' as a modifier"}
		}
		out.Board = true
	}
	return Command{Type: TypeShare, Raw: raw, Share: &out}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.ToLower(args[0])}}, nil
}

// parseWhen accepts RFC3339 or a bare HH:MM, resolved against now's
// day (tomorrow when the time has already passed).
func parseWhen(text string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}
	clock, err := time.Parse("15:04", text)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized time %q, want RFC3339 or HH:MM", text)
	}
	due := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
	if !due.After(now) {
		due = due.AddDate(0, 0, 1)
	}
	return due, nil
}
