package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrNoSubcommand
	ErrInvalidSubcommand
	ErrInsufficientPermission
	ErrTooManyEnumerations
	ErrUnmatchedExpansionLengths
	ErrTooManyWildcardMatches
	ErrNoWildcardMatches
	ErrInvalidPlayer
	ErrInvalidPage
	ErrInvalidNumber
	ErrInvalidConfigKey
	ErrConfiguration
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Invalid config key
//	  - Configuration errors (fatal at startup)
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - No/invalid subcommand
//	  - Expansion and wildcard limits
//	  - Invalid player, page or number
//
//	Exit 3: Permission errors
var exitCodes = map[ErrorKind]int{
	ErrUnknown:                   1,
	ErrInvalidFlag:               2,
	ErrMissingArgument:           2,
	ErrNoSubcommand:              2,
	ErrInvalidSubcommand:         2,
	ErrInsufficientPermission:    3,
	ErrTooManyEnumerations:       2,
	ErrUnmatchedExpansionLengths: 2,
	ErrTooManyWildcardMatches:    2,
	ErrNoWildcardMatches:         2,
	ErrInvalidPlayer:             2,
	ErrInvalidPage:               2,
	ErrInvalidNumber:             2,
	ErrInvalidConfigKey:          1,
	ErrConfiguration:             1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	Hint     string // optional second line, e.g. suggestions
	ExitCode int    // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsUserInput reports whether the error is recovered locally by telling the
// sender, as opposed to a configuration error that must stop startup.
func (e *Error) IsUserInput() bool {
	return e.Kind != ErrConfiguration && e.Kind != ErrUnknown
}

// Chat renders the lines sent to a command sender, using '&' color codes:
// the message in the error color, then the hint if there is one.
func (e *Error) Chat() []string {
	lines := []string{"&c" + e.Message}
	if e.Hint != "" {
		lines = append(lines, "&e"+e.Hint)
	}
	return lines
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
