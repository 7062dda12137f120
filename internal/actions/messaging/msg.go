package messaging

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
)

// Message returns the action for "msg <player> <message...>". A literal \n
// in the message starts a new line; '&' color codes are stored as typed.
func Message(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return message(sender, args, deps)
	}
}

func message(sender dispatchers.Sender, args []string, deps Deps) error {
	target, err := onlinePlayer(args[1], deps)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.Join(args[2:], " "), `\n`)

	_, err = deps.Deliver(domain.Delivery{
		PlayerID: target.ID,
		Kind:     domain.DeliveryMessage,
		Sender:   sender.Name(),
		Body:     strings.Join(lines, "\n"),
	})
	if err != nil {
		return fmt.Errorf("deliver message to %s: %w", target.Name, err)
	}

	sender.SendMessage("&7Message sent to &e" + target.Name)
	return nil
}
