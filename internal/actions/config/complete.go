package config

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
)

// Complete suggests operations for the first argument and key names for
// the second.
func Complete(_ dispatchers.Sender, args []string) []string {
	switch len(args) {
	case 2:
		return withPrefix(operations, args[1])
	case 3:
		op := strings.ToLower(args[1])
		if op != "get" && op != "set" && op != "unset" {
			return nil
		}
		names := make([]string, 0, len(domain.ConfigKeys))
		for _, key := range domain.VisibleConfigKeys() {
			names = append(names, key.Name)
		}
		return withPrefix(names, args[2])
	default:
		return nil
	}
}

func withPrefix(candidates []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
