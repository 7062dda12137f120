package expansion

import (
	"regexp"
	"strings"
)

// blockPattern matches one brace block, allowing a single level of nested
// braces inside it.
var blockPattern = regexp.MustCompile(`\{(?:[^{}]*|\{[^{}]*\})*\}`)

// Segment is a slice of a scanned line: either plain text or a brace block.
type Segment struct {
	Text  string
	Block bool
}

// Scan splits line into literal text and brace blocks, left to right.
// Concatenating the Text of every segment gives back line.
func Scan(line string) []Segment {
	var segments []Segment
	lastEnd := 0

	for _, loc := range blockPattern.FindAllStringIndex(line, -1) {
		if loc[0] > lastEnd {
			segments = append(segments, Segment{Text: line[lastEnd:loc[0]]})
		}
		segments = append(segments, Segment{Text: line[loc[0]:loc[1]], Block: true})
		lastEnd = loc[1]
	}

	if lastEnd < len(line) {
		segments = append(segments, Segment{Text: line[lastEnd:]})
	}

	return segments
}

// Parse scans the space-joined args and classifies every brace block.
// The second result is false when nothing in the line expands, in which case
// the caller should run args once, unmodified.
func Parse(args []string) (*Set, bool) {
	segments := Scan(strings.Join(args, " "))
	expansions := make([]Expansion, 0, len(segments))

	for _, seg := range segments {
		if !seg.Block {
			expansions = append(expansions, Literal{Text: seg.Text})
			continue
		}
		expansions = append(expansions, Classify(seg.Text))
	}

	set := NewSet(expansions)
	if !set.HasExpansion() {
		return nil, false
	}
	return set, true
}

// Expand is Parse followed by Validate and Build. A line without patterns
// comes back as a batch of one: args itself.
func Expand(args []string, maxEnumerations int) ([][]string, error) {
	set, ok := Parse(args)
	if !ok {
		return [][]string{args}, nil
	}
	if err := set.Validate(maxEnumerations); err != nil {
		return nil, err
	}
	return set.Build(), nil
}
