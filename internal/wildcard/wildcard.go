// Package wildcard expands a single '*' token against a list of candidates
// supplied by the target subcommand.
package wildcard

import (
	"strings"

	"github.com/tidwall/match"

	"github.com/footprint-tools/fanout/internal/usage"
)

// Source supplies the values a wildcard at args[index] may stand for.
type Source interface {
	WildcardValues(index int, args []string) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(index int, args []string) ([]string, error)

func (f SourceFunc) WildcardValues(index int, args []string) ([]string, error) {
	return f(index, args)
}

// Index returns the position of the first argument after the subcommand name
// that contains '*', or -1. Later '*' tokens are never expanded.
func Index(args []string) int {
	for i := 1; i < len(args); i++ {
		if strings.Contains(args[i], "*") {
			return i
		}
	}
	return -1
}

// Pattern turns a wildcard token into a match pattern: each run of '*' means
// any sequence and every other character is taken literally.
func Pattern(token string) string {
	var b strings.Builder
	b.Grow(len(token))

	star := false
	for _, r := range token {
		if r == '*' {
			if !star {
				b.WriteByte('*')
			}
			star = true
			continue
		}
		star = false
		if r == '?' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Filter keeps the candidates whose whole string matches token, in order.
// A token made only of '*' keeps every candidate, empty ones included.
func Filter(candidates []string, token string) []string {
	pattern := Pattern(token)
	all := pattern == "*"

	var out []string
	for _, c := range candidates {
		if all || match.Match(c, pattern) {
			out = append(out, c)
		}
	}
	return out
}

// Expand produces one argument array per candidate matching the first
// wildcard token. With no wildcard token it returns args unchanged as a batch
// of one.
// The cap is checked before the zero-match case.
func Expand(args []string, src Source, maxEnumerations int) ([][]string, error) {
	index := Index(args)
	if index < 0 {
		return [][]string{args}, nil
	}

	candidates, err := src.WildcardValues(index, args)
	if err != nil {
		return nil, err
	}

	token := args[index]
	matches := Filter(candidates, token)

	if len(matches) > maxEnumerations {
		return nil, usage.TooManyWildcardMatches(maxEnumerations)
	}
	if len(matches) == 0 {
		return nil, usage.NoWildcardMatches(token)
	}

	batch := make([][]string, 0, len(matches))
	for _, m := range matches {
		line := make([]string, len(args))
		copy(line, args)
		line[index] = m
		batch = append(batch, line)
	}

	return batch, nil
}
