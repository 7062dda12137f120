// Package expansion turns brace patterns in a command line into an ordered
// batch of argument arrays.
//
// Three patterns are recognised inside a line:
//
//	{a..z} {Z..A}   inclusive character range, either direction
//	{1..10} {9..0}  inclusive integer range, either direction
//	{x,y,z}         list of two or more substitutions
//
// Every other brace block is kept verbatim. When several patterns appear in
// the same line they advance together by index ("lockstep"): {a,b} next to
// {1,2} produces two lines, never four.
package expansion

import "strconv"

// Kind tags the concrete variant of an Expansion.
type Kind int

const (
	KindLiteral Kind = iota
	KindCharRange
	KindIntRange
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindCharRange:
		return "character range"
	case KindIntRange:
		return "integer range"
	case KindList:
		return "list"
	default:
		return "literal"
	}
}

// Expansion yields the text a segment of the line contributes to iteration
// index. Bounded variants report their size; a Literal reports none and
// returns the same text for every index.
type Expansion interface {
	Kind() Kind
	Get(index int) (string, bool)
	Size() (int, bool)
}

// CharRange walks the characters between First and Second inclusive.
type CharRange struct {
	Prefix, Suffix string
	First, Second  rune
}

func (c CharRange) Kind() Kind { return KindCharRange }

func (c CharRange) Get(index int) (string, bool) {
	n, ok := step(int(c.First), int(c.Second), index)
	if !ok {
		return "", false
	}
	return c.Prefix + string(rune(n)) + c.Suffix, true
}

func (c CharRange) Size() (int, bool) {
	return span(int(c.First), int(c.Second)), true
}

// IntRange walks the integers between First and Second inclusive.
type IntRange struct {
	Prefix, Suffix string
	First, Second  int
}

func (r IntRange) Kind() Kind { return KindIntRange }

func (r IntRange) Get(index int) (string, bool) {
	n, ok := step(r.First, r.Second, index)
	if !ok {
		return "", false
	}
	return r.Prefix + strconv.Itoa(n) + r.Suffix, true
}

func (r IntRange) Size() (int, bool) {
	return span(r.First, r.Second), true
}

// List substitutes its elements in order. Duplicates are kept.
type List struct {
	Prefix, Suffix string
	Elements       []string
}

func (l List) Kind() Kind { return KindList }

func (l List) Get(index int) (string, bool) {
	if index < 0 || index >= len(l.Elements) {
		return "", false
	}
	return l.Prefix + l.Elements[index] + l.Suffix, true
}

func (l List) Size() (int, bool) {
	return len(l.Elements), true
}

// Literal is text copied unchanged into every iteration.
type Literal struct {
	Text string
}

func (l Literal) Kind() Kind { return KindLiteral }

func (l Literal) Get(int) (string, bool) { return l.Text, true }

func (l Literal) Size() (int, bool) { return 0, false }

// step returns the index-th value walking from first towards second.
func step(first, second, index int) (int, bool) {
	if index < 0 {
		return 0, false
	}
	if first <= second {
		n := first + index
		return n, n <= second
	}
	n := first - index
	return n, n >= second
}

func span(first, second int) int {
	if first > second {
		return first - second + 1
	}
	return second - first + 1
}
