package dispatchers

import (
	"time"

	"github.com/footprint-tools/stockline/internal/constraint"
	"github.com/footprint-tools/stockline/internal/literal"
)

// CommandFunc is the bound callable behind a command.
// A nil result means the command has no return value and renders as OK.
type CommandFunc func(args Args) (any, error)

// Controller exposes the commands it wants registered.
type Controller interface {
	Commands() []CommandSpec
}

// ControllerFunc adapts a plain function to the Controller interface.
type ControllerFunc func() []CommandSpec

func (f ControllerFunc) Commands() []CommandSpec {
	return f()
}

// ArgSpec describes one positional argument of a command.
type ArgSpec struct {
	// Name is the label shown to users. Defaults to the type name.
	Name string
	Type literal.Type
	// OnError replaces the parser's failure reason when non-empty.
	OnError string
	// Param correlates validation violations back to this argument. Defaults to Name.
	Param       string
	Constraint  constraint.Kind
	Description string
}

// CommandSpec describes one registered command.
type CommandSpec struct {
	Name    string
	Summary string
	Args    []ArgSpec
	Action  CommandFunc
}

// Args holds the bound, validated values passed to a CommandFunc,
// in the order the command declares its arguments.
type Args []any

// String returns argument i as a string, or "" when it holds another type.
func (a Args) String(i int) string {
	s, _ := a.at(i).(string)
	return s
}

// Int returns argument i as an int, or 0 when it holds another type.
func (a Args) Int(i int) int {
	n, _ := a.at(i).(int)
	return n
}

// Date returns argument i as a date, or the zero time when it holds another type.
func (a Args) Date(i int) time.Time {
	d, _ := a.at(i).(time.Time)
	return d
}

// Bool returns argument i as a bool.
func (a Args) Bool(i int) bool {
	b, _ := a.at(i).(bool)
	return b
}

// Float returns argument i as a float64.
func (a Args) Float(i int) float64 {
	f, _ := a.at(i).(float64)
	return f
}

func (a Args) at(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}
