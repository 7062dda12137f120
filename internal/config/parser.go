package config

import (
	"fmt"
	"strings"
)

// Parse turns config file lines into a key/value map.
// Blank lines and # comments are skipped, a leading BOM is dropped and the
// last occurrence of a key wins. Values may be wrapped in double quotes and
// may carry a trailing " # comment".
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(value)
	}

	return cfg, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if strings.HasPrefix(value, "\"") {
		if end := strings.Index(value[1:], "\""); end >= 0 {
			return value[1 : end+1]
		}
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}

	return value
}
