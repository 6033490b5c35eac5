// Package literal converts raw command-line tokens into typed scalar values.
package literal

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Type identifies the scalar type a token is converted into.
type Type int

const (
	String Type = iota
	Int
	Date
	Bool
	Float
)

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Date:
		return "date"
	case Bool:
		return "bool"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// DateLayout describes the accepted date format for humans (help, errors).
const DateLayout = "DD.MM.YYYY"

// dd.MM.y with a year of one or more digits
var datePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d+)$`)

// Parser converts tokens into values of a target Type.
type Parser struct{}

// NewParser returns the default literal parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts token into a value of type t.
func (p *Parser) Parse(t Type, token string) (any, error) {
	return Parse(t, token)
}

// Parse converts token into a value of type t.
// Strings pass through, ints are plain decimal literals, dates follow DD.MM.YYYY.
// The returned error message is suitable for showing to the user.
func Parse(t Type, token string) (any, error) {
	switch t {
	case String:
		return token, nil
	case Int:
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", token)
		}
		return n, nil
	case Date:
		return ParseDate(token)
	case Bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q", token)
		}
		return b, nil
	case Float:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", token)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported argument type %s", t)
	}
}

// ParseDate parses a DD.MM.YYYY token into a UTC midnight time.
// The calendar date must exist: 31.02.2020 is rejected.
func ParseDate(token string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, fmt.Errorf("expected a date as %s, got %q", DateLayout, token)
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("year out of range in %q", token)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", token)
	}
	return d, nil
}

// Today returns the calendar date of now as a UTC midnight time,
// comparable with values returned by ParseDate.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date in the accepted input format.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
