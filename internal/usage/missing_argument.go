package usage

import "fmt"

// MissingArgument is returned when a declared argument has no token.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("Argument %q is not specified!", arg),
	}
}

// InvalidArgument is returned when a token cannot be converted or fails a constraint.
func InvalidArgument(arg, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("%s: %s", arg, reason),
	}
}

// UnexpectedArgument is returned in strict mode for tokens past the declared arguments.
func UnexpectedArgument(token string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("Unexpected argument %q", token),
	}
}
