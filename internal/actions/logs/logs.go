package logs

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-logfmt/logfmt"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/usage"
)

const defaultLogLimit = 20

// View returns the action for "logs [count|clear]".
func View(deps Deps) dispatchers.CommandFunc {
	return func(sender dispatchers.Sender, args []string) error {
		if len(args) > 1 && strings.EqualFold(args[1], "clear") {
			return clear(sender, deps)
		}
		return view(sender, args, deps)
	}
}

func view(sender dispatchers.Sender, args []string, deps Deps) error {
	limit := defaultLogLimit
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return usage.InvalidNumber(args[1])
		}
		limit = n
	}

	logPath := deps.LogFilePath()
	content, err := deps.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		sender.SendMessage("&7No log file found at " + logPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		sender.SendMessage("&7Log file is empty")
		return nil
	}

	start := max(0, len(lines)-limit)
	for _, line := range lines[start:] {
		sender.SendMessage(formatLine(line))
	}
	return nil
}

func clear(sender dispatchers.Sender, deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	sender.SendMessage("&aLog file cleared")
	return nil
}

// formatLine renders one logfmt record with color codes by level. Lines that
// do not decode are shown as they are.
func formatLine(line string) string {
	fields, ok := decode(line)
	if !ok || fields["msg"] == "" {
		return "&7" + line
	}

	var parts []string
	if t := fields["time"]; t != "" {
		parts = append(parts, "&8"+t)
	}
	if level := strings.ToUpper(fields["level"]); level != "" {
		parts = append(parts, levelColor(level)+level)
	}
	parts = append(parts, "&f"+fields["msg"])
	return strings.Join(parts, " ")
}

func decode(line string) (map[string]string, bool) {
	d := logfmt.NewDecoder(strings.NewReader(line))
	fields := make(map[string]string)
	for d.ScanRecord() {
		for d.ScanKeyval() {
			fields[string(d.Key())] = string(d.Value())
		}
	}
	if d.Err() != nil {
		return nil, false
	}
	return fields, true
}

func levelColor(level string) string {
	switch level {
	case "ERROR", "FATAL":
		return "&c"
	case "WARN":
		return "&e"
	case "INFO":
		return "&b"
	default:
		return "&7"
	}
}
