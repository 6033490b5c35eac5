package dispatchers

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/footprint-tools/stockline/internal/usage"
)

// Registry maps canonical (uppercase) command names to their specs,
// preserving registration order for help output.
type Registry struct {
	commands map[string]CommandSpec
	order    []string
	sealed   bool
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandSpec),
	}
}

// Register adds every command the controller exposes.
// Either all of them are registered or none is.
func (r *Registry) Register(c Controller) error {
	return r.Add(c.Commands()...)
}

// Add registers the given specs atomically.
// Returns a *usage.Error for invalid names, duplicates, inconsistent
// declarations, or when the registry has been sealed.
func (r *Registry) Add(specs ...CommandSpec) error {
	pending := make([]CommandSpec, 0, len(specs))
	seen := make(map[string]bool, len(specs))

	for _, spec := range specs {
		name := strings.ToUpper(spec.Name)

		if r.sealed {
			return usage.RegistryClosed(name)
		}
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return usage.InvalidCommandName(spec.Name)
		}
		if _, exists := r.commands[name]; exists || seen[name] {
			return usage.CommandAlreadyExists(name)
		}
		spec = normalize(spec)
		spec.Name = name
		if err := checkSpec(spec); err != nil {
			return err
		}

		seen[name] = true
		pending = append(pending, spec)
	}

	for _, spec := range pending {
		r.commands[spec.Name] = spec
		r.order = append(r.order, spec.Name)
	}
	return nil
}

func checkSpec(spec CommandSpec) error {
	if spec.Action == nil {
		return usage.InvalidCommandSpec(spec.Name, "no action")
	}

	params := make(map[string]bool, len(spec.Args))
	for i, a := range spec.Args {
		if !a.Constraint.Supports(a.Type) {
			return usage.InvalidCommandSpec(spec.Name, fmt.Sprintf(
				"argument %d (%s): constraint %s does not apply to %s values",
				i+1, a.Name, a.Constraint, a.Type,
			))
		}
		if params[a.Param] {
			return usage.InvalidCommandSpec(spec.Name, fmt.Sprintf("duplicate parameter %q", a.Param))
		}
		params[a.Param] = true
	}
	return nil
}

// Lookup finds a command by name, ignoring case.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	spec, ok := r.commands[strings.ToUpper(name)]
	return spec, ok
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []CommandSpec {
	out := make([]CommandSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// Seal closes the registration phase. Later calls to Add fail.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registration phase is closed.
func (r *Registry) Sealed() bool {
	return r.sealed
}
