package roster

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

// Join returns the action for "join <name>".
func Join(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return join(sender, args, deps)
	}
}

func join(sender dispatchers.Sender, args []string, deps Deps) error {
	name := args[1]
	if !domain.ValidPlayerName(name) {
		return usage.InvalidPlayer(name)
	}

	p, created, err := deps.Join(name)
	if err != nil {
		return fmt.Errorf("join %s: %w", name, err)
	}

	if created {
		sender.SendMessage("&a" + p.Name + " joined for the first time")
	} else {
		sender.SendMessage("&a" + p.Name + " is now online")
	}
	return nil
}

// Leave returns the action for "leave <player>".
func Leave(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return leave(sender, args, deps)
	}
}

func leave(sender dispatchers.Sender, args []string, deps Deps) error {
	p, err := deps.Leave(args[1])
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return usage.InvalidPlayer(args[1])
	}
	if err != nil {
		return fmt.Errorf("leave %s: %w", args[1], err)
	}

	sender.SendMessage("&e" + p.Name + " left")
	return nil
}

// List returns the action for "players".
func List(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return list(sender, args, deps)
	}
}

func list(sender dispatchers.Sender, _ []string, deps Deps) error {
	players, err := deps.Players(domain.PlayerFilter{})
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}

	if len(players) == 0 {
		sender.SendMessage("&7Nobody has joined yet")
		return nil
	}

	online := 0
	for _, p := range players {
		if p.Online {
			online++
		}
	}

	sender.SendMessage(fmt.Sprintf("&6Players &7(%d/%d online)", online, len(players)))
	for _, p := range players {
		if p.Online {
			sender.SendMessage("&a+ " + p.Name)
		} else {
			sender.SendMessage("&7- " + p.Name + " &8(last seen " + deps.FormatTime(p.LastSeen) + ")")
		}
	}
	return nil
}
