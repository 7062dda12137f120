package config

import (
	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

func get(sender dispatchers.Sender, args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("config get <key>")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	sender.SendMessage("&f" + value)
	return nil
}
