package exec

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/expansion"
	"github.com/footprint-tools/fanout/internal/log"
	"github.com/footprint-tools/fanout/internal/usage"
)

// Exec returns the action for "exec <cmd> [args...]". The remainder is
// template-expanded as a whole and every resulting line is dispatched again
// as the caller.
func Exec(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return run(sender, args[1:], deps)
	}
}

// ExecConsole is "execc <cmd> [args...]": like exec, but the lines run as
// the console.
func ExecConsole(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return run(deps.Console(sender), args[1:], deps)
	}
}

// ExecPlayer is "execp <player> <cmd> [args...]": the lines run as the named
// roster player. An unknown player is reported before anything expands.
func ExecPlayer(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		if len(args) < 3 {
			return usage.MissingArgument("execp <player> <command> [args...]")
		}

		target, err := deps.Player(sender, args[1])
		if err != nil {
			return err
		}
		return run(target, args[2:], deps)
	}
}

// run expands line and dispatches every result as target. Expansion errors
// are returned to the caller's action, so they reach the caller.
func run(target dispatchers.Sender, line []string, deps Deps) error {
	line = Normalize(line, deps.RootNames)
	if len(line) == 0 {
		return usage.NoSubcommand(deps.DisplayName)
	}

	batch, err := expansion.Expand(line, deps.MaxEnumerations)
	if err != nil {
		return err
	}

	log.Debug("exec: %q expanded to %d lines for %s", strings.Join(line, " "), len(batch), target.Name())
	for _, expanded := range batch {
		deps.Dispatch(target, expanded)
	}
	return nil
}

// Normalize drops a leading '/' and a leading root command name. The input
// is not modified.
func Normalize(args []string, rootNames []string) []string {
	if len(args) == 0 {
		return nil
	}

	out := append([]string(nil), args...)
	out[0] = strings.TrimPrefix(out[0], "/")
	if out[0] == "" {
		out = out[1:]
	}

	if len(out) > 0 {
		for _, name := range rootNames {
			if name != "" && strings.EqualFold(out[0], name) {
				out = out[1:]
				break
			}
		}
	}
	return out
}
