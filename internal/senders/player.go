package senders

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/ui/style"
	"github.com/footprint-tools/fanout/internal/usage"
)

// Player is a roster player acting from the terminal (fo --as=<name>).
// Its permissions are the grants stored for it when it was loaded.
type Player struct {
	name  string
	perms map[string]bool
	out   io.Writer
}

// AsPlayer loads name from the roster. Unknown players are a user error.
func AsPlayer(roster domain.RosterStore, name string, out io.Writer) (*Player, error) {
	p, err := roster.Player(name)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, usage.InvalidPlayer(name)
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", name, err)
	}

	grants, err := roster.Grants(p.ID)
	if err != nil {
		return nil, fmt.Errorf("load grants for %s: %w", p.Name, err)
	}

	perms := make(map[string]bool, len(grants))
	for _, g := range grants {
		perms[strings.ToLower(g)] = true
	}
	return &Player{name: p.Name, perms: perms, out: out}, nil
}

func (p *Player) Name() string { return p.name }

func (p *Player) HasPermission(permission string) bool {
	return p.perms[strings.ToLower(permission)]
}

func (p *Player) SendMessage(text string) {
	_, _ = fmt.Fprintln(p.out, style.Colorize(text))
}

func (p *Player) Writer() io.Writer { return p.out }

var _ dispatchers.Sender = (*Player)(nil)
