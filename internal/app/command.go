package app

import (
	"fmt"
	"strings"
)

// Command names as typed at the prompt
const (
	CmdAdd    = "add"
	CmdDelete = "del"
	CmdFind   = "find"
	CmdPrint  = "print"
	CmdExit   = "exit"
)

// Usage lines, reported with ErrMalformedCommand
var commandUsage = map[string]string{
	CmdAdd:    "add <YYYY-MM-DD> <event>",
	CmdDelete: "del <YYYY-MM-DD> [<event>]",
	CmdFind:   "find <YYYY-MM-DD>",
	CmdPrint:  "print",
	CmdExit:   "exit",
}

// Command is a parsed and validated user request. The set of implementations
// is closed: AddCommand, DeleteCommand, FindCommand, PrintCommand and ExitCommand.
type Command interface {
	Name() string
}

// StoreCommand is a Command that Store.Execute accepts. ExitCommand is not one.
type StoreCommand interface {
	Command
	storeCommand()
}

// AddCommand inserts Event under Date
type AddCommand struct {
	Date  Date
	Event string
}

// DeleteCommand removes Event from Date, or the whole Date when Event is empty
type DeleteCommand struct {
	Date  Date
	Event string
}

// FindCommand looks up the events of Date
type FindCommand struct {
	Date Date
}

// PrintCommand lists the whole calendar
type PrintCommand struct{}

// ExitCommand ends the session
type ExitCommand struct{}

func (AddCommand) Name() string { return CmdAdd }
func (DeleteCommand) Name() string { return CmdDelete }
func (FindCommand) Name() string { return CmdFind }
func (PrintCommand) Name() string { return CmdPrint }
func (ExitCommand) Name() string { return CmdExit }

func (AddCommand) storeCommand() {}
func (DeleteCommand) storeCommand() {}
func (FindCommand) storeCommand() {}
func (PrintCommand) storeCommand() {}

// WholeDate reports whether the command removes every event of the date
func (c DeleteCommand) WholeDate() bool {
	return c.Event == ""
}

// Tokenize splits a line on runs of ASCII whitespace
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isASCIISpace)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// ParseLine tokenizes and parses one input line
func ParseLine(line string) (Command, error) {
	return ParseCommand(Tokenize(line))
}

// ParseCommand turns tokens into a Command. Argument counts are checked before
// any token is read, and embedded dates are validated, so a returned Command is
// always safe to execute.
func ParseCommand(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedCommand)
	}

	name := tokens[0]
	args := tokens[1:]

	switch name {
	case CmdAdd:
		if len(args) != 2 {
			return nil, malformed(name)
		}
		date, err := ParseValidDate(args[0])
		if err != nil {
			return nil, err
		}
		return AddCommand{Date: date, Event: args[1]}, nil

	case CmdDelete:
		if len(args) != 1 && len(args) != 2 {
			return nil, malformed(name)
		}
		date, err := ParseValidDate(args[0])
		if err != nil {
			return nil, err
		}
		cmd := DeleteCommand{Date: date}
		if len(args) == 2 {
			cmd.Event = args[1]
		}
		return cmd, nil

	case CmdFind:
		if len(args) != 1 {
			return nil, malformed(name)
		}
		date, err := ParseValidDate(args[0])
		if err != nil {
			return nil, err
		}
		return FindCommand{Date: date}, nil

	case CmdPrint:
		if len(args) != 0 {
			return nil, malformed(name)
		}
		return PrintCommand{}, nil

	case CmdExit:
		if len(args) != 0 {
			return nil, malformed(name)
		}
		return ExitCommand{}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func malformed(name string) error {
	return fmt.Errorf("%w: usage: %s", ErrMalformedCommand, commandUsage[name])
}
