// Package constraint checks bound argument values against declared constraints.
package constraint

import (
	"time"

	"github.com/footprint-tools/stockline/internal/literal"
)

// Kind is one of the closed set of constraints an argument may declare.
type Kind int

const (
	None Kind = iota
	Positive
	NotInFuture
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Positive:
		return "positive"
	case NotInFuture:
		return "not-in-future"
	default:
		return "unknown"
	}
}

const (
	msgPositive    = "must be greater than 0"
	msgNotInFuture = "must be a date in the past or in the present"
)

// Supports reports whether k can be checked against values of type t.
func (k Kind) Supports(t literal.Type) bool {
	switch k {
	case None:
		return true
	case Positive:
		return t == literal.Int || t == literal.Float
	case NotInFuture:
		return t == literal.Date
	default:
		return false
	}
}

// Validator evaluates constraints. Now supplies the reference date for NotInFuture.
type Validator struct {
	Now func() time.Time
}

// NewValidator returns a Validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// Check returns the violation message for value under k, or "" when satisfied.
// Values of a type the constraint does not understand are never reported;
// incompatible declarations are rejected at registration.
func (v *Validator) Check(k Kind, value any) string {
	switch k {
	case Positive:
		switch n := value.(type) {
		case int:
			if n <= 0 {
				return msgPositive
			}
		case float64:
			if n <= 0 {
				return msgPositive
			}
		}
	case NotInFuture:
		d, ok := value.(time.Time)
		if !ok {
			return ""
		}
		if d.After(literal.Today(v.now())) {
			return msgNotInFuture
		}
	}
	return ""
}

func (v *Validator) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}
