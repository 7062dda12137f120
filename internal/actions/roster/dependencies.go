package roster

import (
	"time"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/format"
)

type Deps struct {
	Join       func(name string) (domain.Player, bool, error)
	Leave      func(name string) (domain.Player, error)
	Player     func(name string) (domain.Player, error)
	Players    func(filter domain.PlayerFilter) ([]domain.Player, error)
	Grant      func(playerID, permission string) (bool, error)
	Revoke     func(playerID, permission string) (bool, error)
	Grants     func(playerID string) ([]string, error)
	FormatTime func(t time.Time) string
}

func DefaultDeps(s domain.RosterStore) Deps {
	return Deps{
		Join:       s.Join,
		Leave:      s.Leave,
		Player:     s.Player,
		Players:    s.Players,
		Grant:      s.Grant,
		Revoke:     s.Revoke,
		Grants:     s.Grants,
		FormatTime: format.DateTimeShort,
	}
}
