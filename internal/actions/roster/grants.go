package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

// Grant returns the action for "grant <player> <permission>".
func Grant(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return grant(sender, args, deps)
	}
}

func grant(sender dispatchers.Sender, args []string, deps Deps) error {
	p, err := lookup(args[1], deps)
	if err != nil {
		return err
	}
	perm := strings.ToLower(args[2])

	added, err := deps.Grant(p.ID, perm)
	if err != nil {
		return fmt.Errorf("grant %s to %s: %w", perm, p.Name, err)
	}

	if added {
		sender.SendMessage("&aGranted &e" + perm + "&a to " + p.Name)
	} else {
		sender.SendMessage("&7" + p.Name + " already has &e" + perm)
	}
	return nil
}

// Revoke returns the action for "revoke <player> <permission>".
func Revoke(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return revoke(sender, args, deps)
	}
}

func revoke(sender dispatchers.Sender, args []string, deps Deps) error {
	p, err := lookup(args[1], deps)
	if err != nil {
		return err
	}
	perm := strings.ToLower(args[2])

	removed, err := deps.Revoke(p.ID, perm)
	if err != nil {
		return fmt.Errorf("revoke %s from %s: %w", perm, p.Name, err)
	}

	if removed {
		sender.SendMessage("&aRevoked &e" + perm + "&a from " + p.Name)
	} else {
		sender.SendMessage("&7" + p.Name + " does not have &e" + perm)
	}
	return nil
}

func lookup(name string, deps Deps) (domain.Player, error) {
	p, err := deps.Player(name)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return domain.Player{}, usage.InvalidPlayer(name)
	}
	if err != nil {
		return domain.Player{}, fmt.Errorf("look up %s: %w", name, err)
	}
	return p, nil
}
