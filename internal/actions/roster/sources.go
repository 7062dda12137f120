package roster

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/wildcard"
)

// playerIndex is the argument position holding the target player.
const playerIndex = 1

// OnlinePlayers offers online player names for a '*' in the player slot.
func OnlinePlayers(deps Deps) wildcard.Source {
	return playerSource(deps, domain.PlayerFilter{OnlineOnly: true}, nil)
}

// AllPlayers offers every roster name for the player slot and, when
// permissions is non-nil, its values for the slot after it.
func AllPlayers(deps Deps, permissions func() []string) wildcard.Source {
	return playerSource(deps, domain.PlayerFilter{}, permissions)
}

func playerSource(deps Deps, filter domain.PlayerFilter, permissions func() []string) wildcard.Source {
	return wildcard.SourceFunc(func(index int, _ []string) ([]string, error) {
		switch {
		case index == playerIndex:
			return playerNames(deps, filter)
		case index == playerIndex+1 && permissions != nil:
			return permissions(), nil
		default:
			return nil, nil
		}
	})
}

func playerNames(deps Deps, filter domain.PlayerFilter) ([]string, error) {
	players, err := deps.Players(filter)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return names, nil
}

// CompletePlayers completes the player slot from the roster.
func CompletePlayers(deps Deps, onlineOnly bool) dispatchers.CompleteFunc {
	return func(_ dispatchers.Sender, args []string) []string {
		if len(args) != playerIndex+1 {
			return nil
		}
		names, err := playerNames(deps, domain.PlayerFilter{
			OnlineOnly: onlineOnly,
			Prefix:     args[playerIndex],
		})
		if err != nil {
			return nil
		}
		return names
	}
}

// CompleteGrant completes the player slot, then the permission slot from
// permissions.
func CompleteGrant(deps Deps, permissions func() []string) dispatchers.CompleteFunc {
	players := CompletePlayers(deps, false)
	return func(sender dispatchers.Sender, args []string) []string {
		if len(args) != playerIndex+2 {
			return players(sender, args)
		}

		prefix := strings.ToLower(args[playerIndex+1])
		var out []string
		for _, p := range permissions() {
			if strings.HasPrefix(p, prefix) {
				out = append(out, p)
			}
		}
		return out
	}
}
