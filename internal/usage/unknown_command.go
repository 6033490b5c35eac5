package usage

import "fmt"

// UnknownCommandMessage is the reply for a line whose first token names no command.
const UnknownCommandMessage = "Unknown command! Try '?', to get all commands."

func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: UnknownCommandMessage,
	}
}

// UnknownSubcommand is returned by the command line when name is not a
// subcommand of parent.
func UnknownSubcommand(parent, name string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("%s: unknown command '%s'", parent, name),
	}
}
