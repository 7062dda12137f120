package config

import (
	"fmt"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

func unset(sender dispatchers.Sender, args []string, deps Deps) error {
	if len(args) == 1 && args[0] == "--all" {
		for _, key := range domain.ConfigKeys {
			if err := deps.Unset(key.Name); err != nil {
				return fmt.Errorf("unset %s: %w", key.Name, err)
			}
		}
		sender.SendMessage("&aAll config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("config unset <key|--all>")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	if err := deps.Unset(key); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}

	sender.SendMessage("&aUnset &e" + key)
	return nil
}
