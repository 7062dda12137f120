package history

import (
	"time"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/format"
)

type Deps struct {
	Record     func(e domain.HistoryEntry) (int64, error)
	History    func(limit int) ([]domain.HistoryEntry, error)
	FormatTime func(t time.Time) string
}

func DefaultDeps(s domain.HistoryStore) Deps {
	return Deps{
		Record:     s.Record,
		History:    s.History,
		FormatTime: format.DateTimeShort,
	}
}
