package usage

import "fmt"

// TooManyEnumerations is returned when an expansion or a wildcard would produce
// more invocations than max.
func TooManyEnumerations(max int) *Error {
	return &Error{
		Kind:    ErrTooManyEnumerations,
		Message: fmt.Sprintf("Too many attempted enumerations. The maximum amount is %d!", max),
	}
}

// TooManyWildcardMatches is the wildcard flavour of TooManyEnumerations. The
// message is identical; only the kind differs.
func TooManyWildcardMatches(max int) *Error {
	err := TooManyEnumerations(max)
	err.Kind = ErrTooManyWildcardMatches
	return err
}

// UnmatchedExpansionLengths is returned when two bounded expansions in one line
// disagree on their size.
func UnmatchedExpansionLengths(size, resolved int) *Error {
	return &Error{
		Kind:    ErrUnmatchedExpansionLengths,
		Message: fmt.Sprintf("Please ensure all expansions are of equal length (%d != %d)", size, resolved),
	}
}

// NoWildcardMatches is returned when no candidate survives the wildcard filter.
func NoWildcardMatches(token string) *Error {
	return &Error{
		Kind:    ErrNoWildcardMatches,
		Message: fmt.Sprintf("Your wildcard argument '%s' did not find any matches!", token),
	}
}
