package history

import (
	"fmt"
	"strconv"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

const defaultHistorySize = 10

// Show returns the action for "history [n]".
func Show(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return show(sender, args, deps)
	}
}

func show(sender dispatchers.Sender, args []string, deps Deps) error {
	limit := defaultHistorySize
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return usage.InvalidNumber(args[1])
		}
		limit = n
	}

	entries, err := deps.History(limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if len(entries) == 0 {
		sender.SendMessage("&7No commands recorded yet")
		return nil
	}

	sender.SendMessage(fmt.Sprintf("&6Last %d commands", len(entries)))
	// oldest first reads naturally in a terminal
	for i := len(entries) - 1; i >= 0; i-- {
		sender.SendMessage(formatEntry(entries[i], deps))
	}
	return nil
}

func formatEntry(e domain.HistoryEntry, deps Deps) string {
	line := "&8[" + deps.FormatTime(e.CreatedAt) + "] &e" + e.Sender + "&7: &f" + e.Line

	switch {
	case e.Error != "":
		return line + " &c(" + e.Error + ")"
	case e.Failures > 0:
		return line + fmt.Sprintf(" &7(%s, %d run, &c%d failed&7)", e.Route, e.Invocations, e.Failures)
	default:
		return line + fmt.Sprintf(" &7(%s, %d run)", e.Route, e.Invocations)
	}
}
