package dispatchers

import (
	"github.com/footprint-tools/stockline/internal/literal"
	"github.com/footprint-tools/stockline/internal/usage"
)

// LiteralParser converts a raw token into a value of the target type.
type LiteralParser interface {
	Parse(t literal.Type, token string) (any, error)
}

// OutcomeKind tags the result of binding one argument.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeError
	OutcomeNotSpecified
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "OK"
	case OutcomeError:
		return "ERROR"
	case OutcomeNotSpecified:
		return "NOT_SPECIFIED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the result of binding one token to one ArgSpec.
// Value is set only for OutcomeOK, Message only otherwise.
type Outcome struct {
	Kind    OutcomeKind
	Value   any
	Message string
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// bindArg converts token for spec. present is false when the line ran out of tokens.
func bindArg(p LiteralParser, spec ArgSpec, token string, present bool) Outcome {
	if !present {
		return Outcome{
			Kind:    OutcomeNotSpecified,
			Message: usage.MissingArgument(spec.Name).Error(),
		}
	}

	value, err := p.Parse(spec.Type, token)
	if err != nil {
		reason := spec.OnError
		if reason == "" {
			reason = err.Error()
		}
		return Outcome{
			Kind:    OutcomeError,
			Message: usage.InvalidArgument(spec.Name, reason).Error(),
		}
	}

	return Outcome{Kind: OutcomeOK, Value: value}
}

// bindAll produces exactly one Outcome per declared argument, consuming tokens
// positionally. Tokens past the declared arguments are not looked at.
func bindAll(p LiteralParser, args []ArgSpec, tokens []string) []Outcome {
	outcomes := make([]Outcome, len(args))
	for i, spec := range args {
		if i < len(tokens) {
			outcomes[i] = bindArg(p, spec, tokens[i], true)
		} else {
			outcomes[i] = bindArg(p, spec, "", false)
		}
	}
	return outcomes
}
