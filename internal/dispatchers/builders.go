package dispatchers

import (
	"github.com/footprint-tools/stockline/internal/constraint"
	"github.com/footprint-tools/stockline/internal/literal"
)

// DefaultSummary is used for commands registered without a summary.
const DefaultSummary = "No description provided"

func Command(name, summary string, action CommandFunc, args ...ArgSpec) CommandSpec {
	return CommandSpec{
		Name:    name,
		Summary: summary,
		Args:    args,
		Action:  action,
	}
}

func Arg(name string, t literal.Type) ArgSpec {
	return ArgSpec{
		Name:  name,
		Type:  t,
		Param: name,
	}
}

// StringArg, IntArg and DateArg are shorthands for the common argument types.
func StringArg(name string) ArgSpec { return Arg(name, literal.String) }
func IntArg(name string) ArgSpec    { return Arg(name, literal.Int) }
func DateArg(name string) ArgSpec   { return Arg(name, literal.Date) }

// Positive requires the argument to be greater than zero.
func (a ArgSpec) Positive() ArgSpec {
	a.Constraint = constraint.Positive
	return a
}

// NotInFuture requires the date argument to be today or earlier.
func (a ArgSpec) NotInFuture() ArgSpec {
	a.Constraint = constraint.NotInFuture
	return a
}

// OnFailure sets the message shown when the token cannot be parsed.
func (a ArgSpec) OnFailure(text string) ArgSpec {
	a.OnError = text
	return a
}

// Describe attaches a human description to the argument.
func (a ArgSpec) Describe(text string) ArgSpec {
	a.Description = text
	return a
}

// normalize fills the defaults a registered descriptor relies on.
func normalize(spec CommandSpec) CommandSpec {
	out := spec
	if out.Summary == "" {
		out.Summary = DefaultSummary
	}

	out.Args = make([]ArgSpec, len(spec.Args))
	for i, a := range spec.Args {
		if a.Name == "" {
			a.Name = a.Type.String()
		}
		if a.Param == "" {
			a.Param = a.Name
		}
		out.Args[i] = a
	}
	return out
}
