package usage

// MissingArgument is returned when a required argument is not provided.
// The syntax line of the subcommand is the message, like a usage hint.
func MissingArgument(syntax string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: syntax,
	}
}
