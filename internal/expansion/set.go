package expansion

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/usage"
)

// Set holds every segment of one line in order, together with the size the
// batch resolves to.
type Set struct {
	expansions []Expansion
	size       int
	bounded    bool
}

// NewSet derives the resolved size as the largest bounded size in expansions.
func NewSet(expansions []Expansion) *Set {
	s := &Set{expansions: expansions}
	for _, exp := range expansions {
		n, ok := exp.Size()
		if !ok {
			continue
		}
		if !s.bounded || n > s.size {
			s.size = n
		}
		s.bounded = true
	}
	return s
}

// Expansions returns the segments in line order.
func (s *Set) Expansions() []Expansion {
	return s.expansions
}

// Size returns the resolved batch size, or false when no segment is bounded.
func (s *Set) Size() (int, bool) {
	return s.size, s.bounded
}

// HasExpansion reports whether any segment is something other than a Literal.
func (s *Set) HasExpansion() bool {
	for _, exp := range s.expansions {
		if exp.Kind() != KindLiteral {
			return true
		}
	}
	return false
}

// Validate checks the resolved size against maxEnumerations, then checks that
// every bounded segment has exactly the resolved size.
func (s *Set) Validate(maxEnumerations int) error {
	if !s.bounded {
		return nil
	}

	if s.size > maxEnumerations {
		return usage.TooManyEnumerations(maxEnumerations)
	}

	for _, exp := range s.expansions {
		n, ok := exp.Size()
		if !ok {
			continue
		}
		if n != s.size {
			return usage.UnmatchedExpansionLengths(n, s.size)
		}
	}

	return nil
}

// Build produces one argument array per index, joining every segment's value
// for that index and splitting the result on whitespace. It must only be
// called on a Set that passed Validate.
func (s *Set) Build() [][]string {
	batch := make([][]string, 0, s.size)

	for i := 0; i < s.size; i++ {
		var line strings.Builder
		for _, exp := range s.expansions {
			if text, ok := exp.Get(i); ok {
				line.WriteString(text)
			}
		}
		batch = append(batch, strings.Fields(line.String()))
	}

	return batch
}
