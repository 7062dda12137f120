package messaging

import (
	"time"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/format"
)

type Deps struct {
	Player     func(name string) (domain.Player, error)
	Deliver    func(d domain.Delivery) (int64, error)
	Inbox      func(playerID string, limit int) ([]domain.Delivery, error)
	FormatTime func(t time.Time) string
}

func DefaultDeps(s domain.Store) Deps {
	return Deps{
		Player:     s.Player,
		Deliver:    s.Deliver,
		Inbox:      s.Inbox,
		FormatTime: format.DateTimeShort,
	}
}
