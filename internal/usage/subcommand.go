package usage

import (
	"fmt"
	"strings"
)

// NoSubcommand is returned when a line has no arguments at all.
func NoSubcommand(displayName string) *Error {
	return &Error{
		Kind:    ErrNoSubcommand,
		Message: fmt.Sprintf("No subcommand provided. Use '/%s help' to see a list of valid commands", displayName),
	}
}

// InvalidSubcommand is returned when the first argument names no registered
// subcommand, either exactly or as a unique prefix. Close names, if any, are
// offered as a hint.
func InvalidSubcommand(suggestions ...string) *Error {
	err := &Error{
		Kind:    ErrInvalidSubcommand,
		Message: "Invalid subcommand provided",
	}
	if len(suggestions) > 0 {
		err.Hint = fmt.Sprintf("Did you mean: %s?", strings.Join(suggestions, ", "))
	}
	return err
}

// InsufficientPermission is returned when the sender lacks the subcommand's permission.
func InsufficientPermission() *Error {
	return &Error{
		Kind:    ErrInsufficientPermission,
		Message: "Insufficient Permission",
	}
}
