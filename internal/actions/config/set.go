package config

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

func set(sender dispatchers.Sender, args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("config set <key> <value>")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	// values may contain spaces, e.g. display_date=Jan 02
	value := strings.Join(args[1:], " ")
	if err := deps.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	sender.SendMessage("&aSet &e" + key + "&a to &f" + value)
	return nil
}
