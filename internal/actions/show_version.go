package actions

import "github.com/footprint-tools/fanout/internal/dispatchers"

func ShowVersion(sender dispatchers.Sender, args []string) error {
	return showVersion(sender, args, defaultDeps())
}

func showVersion(sender dispatchers.Sender, _ []string, deps actionDependencies) error {
	sender.SendMessage("&7fo version &f" + deps.Version())
	return nil
}
