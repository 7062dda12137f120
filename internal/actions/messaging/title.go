package messaging

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
)

// titleSplitter normalises the three accepted title/subtitle separators.
var titleSplitter = strings.NewReplacer(`\n`, "::", "\n", "::")

// Title returns the action for "title <player> <title>[::subtitle]".
func Title(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		return title(sender, args, deps)
	}
}

func title(sender dispatchers.Sender, args []string, deps Deps) error {
	target, err := onlinePlayer(args[1], deps)
	if err != nil {
		return err
	}

	head, sub := SplitTitle(strings.Join(args[2:], " "))

	_, err = deps.Deliver(domain.Delivery{
		PlayerID: target.ID,
		Kind:     domain.DeliveryTitle,
		Sender:   sender.Name(),
		Body:     head,
		Subtitle: sub,
	})
	if err != nil {
		return fmt.Errorf("deliver title to %s: %w", target.Name, err)
	}

	sender.SendMessage("&7Title sent to &e" + target.Name)
	return nil
}

// SplitTitle splits text on "::", a newline or a literal \n. Anything past
// the second part is dropped.
func SplitTitle(text string) (title, subtitle string) {
	parts := strings.Split(titleSplitter.Replace(text), "::")
	title = parts[0]
	if len(parts) > 1 {
		subtitle = parts[1]
	}
	return title, subtitle
}
