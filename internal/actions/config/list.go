package config

import (
	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
)

func list(sender dispatchers.Sender, _ []string, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value, exists := values[key.Name]
			if !exists || (key.HideIfEmpty && value == "") {
				continue
			}
			lines = append(lines, "  &7"+key.Name+"&8=&f"+value)
		}

		if len(lines) == 0 {
			continue
		}
		sender.SendMessage("&6" + section)
		dispatchers.SendLines(sender, lines...)
	}

	return nil
}
