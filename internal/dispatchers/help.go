package dispatchers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/footprint-tools/fanout/internal/ui/style"
	"github.com/footprint-tools/fanout/internal/usage"
)

const (
	DefaultHelpPerPage = 8
	DefaultHelpWidth   = 40
	minHelpWidth       = 10
)

// HelpOptions shapes the paginated help listing.
type HelpOptions struct {
	Title   string // shown in the header, defaults to the display name
	PerPage int
	Width   int // header and footer width, at least 10
	Spacer  rune
}

func (o HelpOptions) withDefaults(m *Manager) HelpOptions {
	if o.Title == "" {
		o.Title = m.DisplayName()
	}
	if o.PerPage <= 0 {
		o.PerPage = DefaultHelpPerPage
	}
	if o.Width <= 0 {
		o.Width = DefaultHelpWidth
	}
	o.Width = max(minHelpWidth, o.Width)
	if o.Spacer == 0 {
		o.Spacer = '-'
	}
	return o
}

// HelpAction lists the subcommands the sender may run, one page at a time.
// args[1], if present, is the page; out-of-range pages are clamped.
func HelpAction(m *Manager, opts HelpOptions) CommandFunc {
	return func(sender Sender, args []string) error {
		o := opts.withDefaults(m)

		page := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return usage.InvalidPage()
			}
			page = n
		}

		cmds := sortedForHelp(visibleTo(sender, m.Commands()))
		maxPage := max(1, (len(cmds)-1)/o.PerPage+1)
		page = min(max(page, 1), maxPage)

		sender.SendMessage(fillLine("&r &6("+o.Title+" Help)&r ", o))

		start := (page - 1) * o.PerPage
		end := min(page*o.PerPage, len(cmds))
		for _, cmd := range cmds[start:end] {
			sender.SendMessage(formatEntry(cmd))
		}

		sender.SendMessage(fillLine(fmt.Sprintf("&r &ePage &6%d of %d&r ", page, maxPage), o))
		return nil
	}
}

// visibleTo drops commands the sender could not run.
func visibleTo(sender Sender, cmds []*DispatchNode) []*DispatchNode {
	out := make([]*DispatchNode, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd.Permission == "" || sender.HasPermission(cmd.Permission) {
			out = append(out, cmd)
		}
	}
	return out
}

// sortedForHelp orders commands by category, then by name.
func sortedForHelp(cmds []*DispatchNode) []*DispatchNode {
	out := make([]*DispatchNode, len(cmds))
	copy(out, cmds)

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := categoryRank(out[i].Category), categoryRank(out[j].Category)
		if ri != rj {
			return ri < rj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func formatEntry(cmd *DispatchNode) string {
	return "&6" + cmd.Usage + " - &e" + cmd.Summary
}

// fillLine centres text between spacer runs so the visible width is
// o.Width. When the padding is odd the extra spacer goes on the right.
func fillLine(text string, o HelpOptions) string {
	visible := len([]rune(style.Strip(text)))

	filler := max(0, (o.Width-visible)/2)
	left := strings.Repeat(string(o.Spacer), filler)
	right := left
	if filler*2+visible < o.Width {
		right += string(o.Spacer)
	}

	return "&e&m" + left + text + "&e&m" + right
}
