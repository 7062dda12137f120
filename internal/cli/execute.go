package cli

import (
	"errors"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/usage"
)

// Execute runs one line for sender and returns the process exit code. The
// sender must hold the root permission before anything is looked up.
func Execute(m *dispatchers.Manager, sender dispatchers.Sender, args []string) int {
	if !sender.HasPermission(m.RootPermission()) {
		err := usage.InsufficientPermission()
		dispatchers.SendLines(sender, err.Chat()...)
		return err.GetExitCode()
	}

	return ExitCode(m.Dispatch(sender, args))
}

// Complete returns tab completions for sender. Senders without the root
// permission get nothing.
func Complete(m *dispatchers.Manager, sender dispatchers.Sender, args []string) []string {
	if !sender.HasPermission(m.RootPermission()) {
		return nil
	}
	return m.Complete(sender, args)
}

// ExitCode maps a dispatch report to a process exit code. A batch with any
// failed invocation exits 1.
func ExitCode(report dispatchers.Report) int {
	var ue *usage.Error
	switch {
	case errors.As(report.Err, &ue):
		return ue.GetExitCode()
	case report.Err != nil, report.Failures > 0:
		return 1
	default:
		return 0
	}
}
