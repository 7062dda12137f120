package config

import "strings"

// Set rewrites key's line in place, keeping any trailing " # comment", or
// appends a new line. The bool reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.ContainsAny(value, " \t") {
		value = "\"" + value + "\""
	}

	for i, line := range lines {
		name, rest, ok := splitAssignment(line)
		if !ok || name != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 {
			comment := strings.TrimSpace(rest[idx:])
			lines[i] = key + "=" + value + " " + comment
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset drops every line assigning key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if name, _, ok := splitAssignment(line); ok && name == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func splitAssignment(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	name, rest, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(name), rest, true
}
