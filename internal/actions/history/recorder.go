package history

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/log"
)

// Recorder writes every dispatched line to the history store.
type Recorder struct {
	deps Deps
}

func NewRecorder(deps Deps) *Recorder {
	return &Recorder{deps: deps}
}

// Record implements dispatchers.Recorder. Store failures are logged and
// never reach the sender.
func (r *Recorder) Record(sender dispatchers.Sender, args []string, report dispatchers.Report) {
	entry := domain.HistoryEntry{
		Sender:      sender.Name(),
		Line:        strings.Join(args, " "),
		Command:     report.Command,
		Route:       report.Route.String(),
		Invocations: report.Invocations,
		Failures:    report.Failures,
	}
	if report.Err != nil {
		entry.Error = report.Err.Error()
		entry.Invocations = 0
	}

	if _, err := r.deps.Record(entry); err != nil {
		log.Warn("history: could not record %q: %v", entry.Line, err)
	}
}

var _ dispatchers.Recorder = (*Recorder)(nil)
