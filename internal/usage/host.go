package usage

import "fmt"

// InvalidPlayer is returned when a roster lookup fails.
func InvalidPlayer(name string) *Error {
	return &Error{
		Kind:    ErrInvalidPlayer,
		Message: fmt.Sprintf("Invalid player: %s", name),
	}
}

// InvalidPage is returned by paginated listings for a non-numeric page.
func InvalidPage() *Error {
	return &Error{
		Kind:    ErrInvalidPage,
		Message: "Invalid page",
	}
}

// InvalidNumber is returned when a count argument is not a positive integer.
func InvalidNumber(value string) *Error {
	return &Error{
		Kind:    ErrInvalidNumber,
		Message: fmt.Sprintf("Invalid number: %s", value),
	}
}

// InvalidConfigKey is returned for keys missing from the configuration table.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("fo: invalid config key '%s'. See 'fo config list'.", key),
	}
}

// Configuration is returned when commands are registered incorrectly. It is
// fatal: the host must not start with a broken registry.
func Configuration(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrConfiguration,
		Message: "fo: " + fmt.Sprintf(format, args...),
	}
}
