package config

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/usage"
)

const syntax = "config <get|set|unset|list> [key] [value]"

var operations = []string{"get", "list", "set", "unset"}

// Config returns the action for "config <op> ...". args[0] is the
// subcommand name and args[1] the operation.
func Config(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		if len(args) < 2 {
			return usage.MissingArgument(syntax)
		}

		rest := args[2:]
		switch strings.ToLower(args[1]) {
		case "get":
			return get(sender, rest, deps)
		case "set":
			return set(sender, rest, deps)
		case "unset":
			return unset(sender, rest, deps)
		case "list":
			return list(sender, rest, deps)
		default:
			return usage.MissingArgument(syntax)
		}
	}
}
