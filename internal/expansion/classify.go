package expansion

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	charRangePattern = regexp.MustCompile(`\{([a-z])\.\.([a-z])\}|\{([A-Z])\.\.([A-Z])\}`)
	intRangePattern  = regexp.MustCompile(`\{(\d+)\.\.(\d+)\}`)
	listPattern      = regexp.MustCompile(`\{([^}]+)\}`)
)

type matcher func(block string) (Expansion, bool)

// matchers run in priority order. Ranges come before the list matcher, which
// would otherwise accept "{a..z}" as a one-element list.
var matchers = []matcher{
	matchCharRange,
	matchIntRange,
	matchList,
}

// Classify returns the first variant that accepts block, or a Literal holding
// the block verbatim.
func Classify(block string) Expansion {
	for _, match := range matchers {
		if exp, ok := match(block); ok {
			return exp
		}
	}
	return Literal{Text: block}
}

func matchCharRange(block string) (Expansion, bool) {
	m := charRangePattern.FindStringSubmatchIndex(block)
	if m == nil {
		return nil, false
	}

	// Lower-case bounds are groups 1 and 2, upper-case ones 3 and 4.
	first := 2
	if m[2] < 0 {
		first = 6
	}

	return CharRange{
		Prefix: block[:m[0]],
		Suffix: block[m[1]:],
		First:  rune(block[m[first]]),
		Second: rune(block[m[first+2]]),
	}, true
}

func matchIntRange(block string) (Expansion, bool) {
	m := intRangePattern.FindStringSubmatchIndex(block)
	if m == nil {
		return nil, false
	}

	first, err := strconv.ParseInt(block[m[2]:m[3]], 10, 32)
	if err != nil {
		return nil, false
	}
	second, err := strconv.ParseInt(block[m[4]:m[5]], 10, 32)
	if err != nil {
		return nil, false
	}

	return IntRange{
		Prefix: block[:m[0]],
		Suffix: block[m[1]:],
		First:  int(first),
		Second: int(second),
	}, true
}

func matchList(block string) (Expansion, bool) {
	m := listPattern.FindStringSubmatchIndex(block)
	if m == nil {
		return nil, false
	}

	elements := splitList(block[m[2]:m[3]])
	if len(elements) < 2 {
		return nil, false
	}

	return List{
		Prefix:   block[:m[0]],
		Suffix:   block[m[1]:],
		Elements: elements,
	}, true
}

// splitList splits on commas and drops trailing empty entries, so "a,b," is
// a two-element list and "a,,b" keeps its empty middle entry.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
