package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrInvalidArgument
	ErrUnexpectedArgument
	ErrUnknownCommand
	ErrInvalidCommandName
	ErrCommandAlreadyExists
	ErrInvalidCommandSpec
	ErrRegistryClosed
	ErrInvalidConfigKey
)

// Exit codes:
//
//	Exit 1: Configuration/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid command name
//	  - Command already exists
//	  - Invalid command spec
//	  - Registry closed
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid argument
//	  - Unexpected argument
//	  - Invalid config key
var exitCodes = map[ErrorKind]int{
	ErrUnknown:              1,
	ErrInvalidFlag:          2,
	ErrMissingArgument:      2,
	ErrInvalidArgument:      2,
	ErrUnexpectedArgument:   2,
	ErrUnknownCommand:       1,
	ErrInvalidCommandName:   1,
	ErrCommandAlreadyExists: 1,
	ErrInvalidCommandSpec:   1,
	ErrRegistryClosed:       1,
	ErrInvalidConfigKey:     2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
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

// Is reports whether target is a *Error of the same kind, so callers can
// match with errors.Is(err, &usage.Error{Kind: usage.ErrCommandAlreadyExists}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind reports whether err is a usage error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
