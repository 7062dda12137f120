package senders

import (
	"fmt"
	"io"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/ui/style"
)

const ConsoleName = "console"

// Console is the operator at the terminal. It holds every permission.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Name() string { return ConsoleName }

func (c *Console) HasPermission(string) bool { return true }

func (c *Console) SendMessage(text string) {
	_, _ = fmt.Fprintln(c.out, style.Colorize(text))
}

func (c *Console) Writer() io.Writer { return c.out }

// Output is where sender prints, so a sender built on its behalf can write
// to the same place. Senders without a writer get io.Discard.
func Output(sender dispatchers.Sender) io.Writer {
	if w, ok := sender.(interface{ Writer() io.Writer }); ok {
		return w.Writer()
	}
	return io.Discard
}

var _ dispatchers.Sender = (*Console)(nil)
