package dispatchers

import "fmt"

// Names of the commands every Dispatcher provides.
const (
	HelpCommand = "?"
	QuitCommand = "Q"
)

// QuitSentinel is printed by the quit command before the session ends.
const QuitSentinel = "1"

type builtins struct {
	d *Dispatcher
}

func (b builtins) Commands() []CommandSpec {
	return []CommandSpec{
		Command(HelpCommand, "Prints this list", b.help),
		Command(QuitCommand, "To quit", b.quitSession),
	}
}

func (b builtins) help(Args) (any, error) {
	fmt.Fprintln(b.d.out, "Available commands:")
	b.d.WriteHelp(b.d.out)
	fmt.Fprintln(b.d.out, `"q" to quit`)
	return "", nil
}

func (b builtins) quitSession(Args) (any, error) {
	fmt.Fprintln(b.d.out, QuitSentinel)
	b.d.logger.Info("dispatch: quit requested")
	b.d.quit()
	return nil, nil
}
