package messaging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

const defaultInboxSize = 10

// Inbox returns the action for "inbox <player> [n]".
func Inbox(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return inbox(sender, args, deps)
	}
}

func inbox(sender dispatchers.Sender, args []string, deps Deps) error {
	limit := defaultInboxSize
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n <= 0 {
			return usage.InvalidNumber(args[2])
		}
		limit = n
	}

	p, err := knownPlayer(args[1], deps)
	if err != nil {
		return err
	}

	deliveries, err := deps.Inbox(p.ID, limit)
	if err != nil {
		return fmt.Errorf("read inbox of %s: %w", p.Name, err)
	}

	if len(deliveries) == 0 {
		sender.SendMessage("&7No deliveries for &e" + p.Name)
		return nil
	}

	sender.SendMessage(fmt.Sprintf("&6Inbox of %s &7(%d)", p.Name, len(deliveries)))
	for _, d := range deliveries {
		dispatchers.SendLines(sender, formatDelivery(d, deps)...)
	}
	return nil
}

func formatDelivery(d domain.Delivery, deps Deps) []string {
	stamp := "&8[" + deps.FormatTime(d.CreatedAt) + "] "

	if d.Kind == domain.DeliveryTitle {
		line := stamp + "&7title from &e" + d.Sender + "&7: &r" + d.Body
		if d.Subtitle != "" {
			line += " &7/ &r" + d.Subtitle
		}
		return []string{line}
	}

	body := strings.Split(d.Body, "\n")
	lines := []string{stamp + "&7from &e" + d.Sender + "&7: &r" + body[0]}
	for _, extra := range body[1:] {
		lines = append(lines, "  &r"+extra)
	}
	return lines
}
