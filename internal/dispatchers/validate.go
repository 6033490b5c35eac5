package dispatchers

import (
	"github.com/footprint-tools/stockline/internal/constraint"
	"github.com/footprint-tools/stockline/internal/usage"
)

// Validator checks one value against one declared constraint and returns the
// violation message, or "" when the value is acceptable.
type Validator interface {
	Check(k constraint.Kind, value any) string
}

// Violation is a failed constraint, keyed by the argument's Param.
type Violation struct {
	Param   string
	Message string
}

// violations runs every declared constraint; it never stops at the first failure.
func violations(v Validator, args []ArgSpec, values Args) []Violation {
	var out []Violation
	for i, spec := range args {
		if spec.Constraint == constraint.None || i >= len(values) {
			continue
		}
		if msg := v.Check(spec.Constraint, values[i]); msg != "" {
			out = append(out, Violation{Param: spec.Param, Message: msg})
		}
	}
	return out
}

// renderViolations formats violations in declaration order, naming each
// argument by its display name.
func renderViolations(args []ArgSpec, found []Violation) []string {
	var lines []string
	for _, spec := range args {
		for _, v := range found {
			if v.Param == spec.Param {
				lines = append(lines, usage.InvalidArgument(spec.Name, v.Message).Error())
			}
		}
	}
	return lines
}
