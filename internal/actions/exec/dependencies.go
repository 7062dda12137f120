package exec

import (
	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/senders"
)

type Deps struct {
	// Dispatch runs one expanded line as the target sender.
	Dispatch func(sender dispatchers.Sender, args []string) dispatchers.Report
	// Console builds the sender used by execc.
	Console func(caller dispatchers.Sender) dispatchers.Sender
	// Player loads the roster player used by execp.
	Player func(caller dispatchers.Sender, name string) (dispatchers.Sender, error)
	// MaxEnumerations caps the template expansion of the whole line.
	MaxEnumerations int
	// RootNames are stripped when they lead the line, so "exec fanout msg"
	// and "exec msg" behave the same.
	RootNames   []string
	DisplayName string
}

// DefaultDeps re-dispatches through m. Senders built for execc and execp
// print wherever the caller prints.
func DefaultDeps(m *dispatchers.Manager, roster domain.RosterStore) Deps {
	maxEnumerations, _ := m.Limits()
	return Deps{
		Dispatch: m.Dispatch,
		Console: func(caller dispatchers.Sender) dispatchers.Sender {
			return senders.NewConsole(senders.Output(caller))
		},
		Player: func(caller dispatchers.Sender, name string) (dispatchers.Sender, error) {
			return senders.AsPlayer(roster, name, senders.Output(caller))
		},
		MaxEnumerations: maxEnumerations,
		RootNames:       []string{m.Name(), m.DisplayName()},
		DisplayName:     m.DisplayName(),
	}
}
