package messaging

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/usage"
)

// onlinePlayer resolves a delivery target. Offline and unknown players are
// both reported as invalid.
func onlinePlayer(name string, deps Deps) (domain.Player, error) {
	p, err := knownPlayer(name, deps)
	if err != nil {
		return domain.Player{}, err
	}
	if !p.Online {
		return domain.Player{}, usage.InvalidPlayer(name)
	}
	return p, nil
}

func knownPlayer(name string, deps Deps) (domain.Player, error) {
	p, err := deps.Player(name)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return domain.Player{}, usage.InvalidPlayer(name)
	}
	if err != nil {
		return domain.Player{}, fmt.Errorf("look up %s: %w", name, err)
	}
	return p, nil
}
