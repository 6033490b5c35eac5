package usage

import "fmt"

// InvalidCommandName is returned when a command name is empty or contains whitespace.
func InvalidCommandName(name string) *Error {
	return &Error{
		Kind:    ErrInvalidCommandName,
		Message: fmt.Sprintf("stockline: invalid command name %q: must be non-empty and contain no whitespace", name),
	}
}

// CommandAlreadyExists is returned when a command name is registered twice.
func CommandAlreadyExists(name string) *Error {
	return &Error{
		Kind:    ErrCommandAlreadyExists,
		Message: fmt.Sprintf("stockline: command %q already exists", name),
	}
}

// InvalidCommandSpec is returned when a command declaration is inconsistent.
func InvalidCommandSpec(name, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidCommandSpec,
		Message: fmt.Sprintf("stockline: command %q: %s", name, reason),
	}
}

// RegistryClosed is returned when registering after processing has started.
func RegistryClosed(name string) *Error {
	return &Error{
		Kind:    ErrRegistryClosed,
		Message: fmt.Sprintf("stockline: cannot register %q: registration is closed", name),
	}
}
