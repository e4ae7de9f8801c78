// Package operation parses the compact time-delta language: <+|-><integer><s|m|h|d>
package operation

import (
	"math"
	"strconv"
	"time"

	perr "dconv/internal/platform/errors"
)

// Sign selects whether the duration is added or subtracted
type Sign uint8

const (
	// Add is written '+'
	Add Sign = iota + 1
	// Subtract is written '-'
	Subtract
)

func (s Sign) String() string {
	switch s {
	case Add:
		return "+"
	case Subtract:
		return "-"
	default:
		return "?"
	}
}

// Unit is one of the supported span units
type Unit rune

const (
	Seconds Unit = 's'
	Minutes Unit = 'm'
	Hours   Unit = 'h'
	Days    Unit = 'd'
)

// Duration returns the length of one unit; days are fixed 24h spans
func (u Unit) Duration() time.Duration {
	switch u {
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	default:
		return 0
	}
}

func (u Unit) String() string { return string(rune(u)) }

// Operation is a parsed delta
// Value keeps the magnitude exactly as written; a negative Value is not folded into Sign
type Operation struct {
	Sign     Sign
	Value    int64
	Unit     Unit
	Duration time.Duration
}

// Parse reads raw as <sign><magnitude><unit>
// Checks run in order: length, sign, magnitude, unit
func Parse(raw string) (Operation, error) {
	r := []rune(raw)
	if len(r) < 3 {
		return Operation{}, perr.Newf(perr.ErrorCodeInvalidOperation, "Invalid operation %s", raw)
	}

	var sign Sign
	switch r[0] {
	case '+':
		sign = Add
	case '-':
		sign = Subtract
	default:
		return Operation{}, perr.Newf(perr.ErrorCodeUnrecognizedSymbol, "Unrecognized symbol %c", r[0])
	}

	digits := string(r[1 : len(r)-1])
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Operation{}, perr.Wrapf(err, perr.ErrorCodeInvalidValue, "Invalid value '%s'", digits)
	}

	unit := Unit(r[len(r)-1])
	step := unit.Duration()
	if step == 0 {
		return Operation{}, perr.Newf(perr.ErrorCodeUnsupportedUnit, "Unsupported unit %c", r[len(r)-1])
	}

	limit := int64(math.MaxInt64 / step)
	if value > limit || value < -limit {
		return Operation{}, perr.Newf(perr.ErrorCodeInvalidValue, "Invalid value '%s': duration out of range", digits)
	}

	return Operation{
		Sign:     sign,
		Value:    value,
		Unit:     unit,
		Duration: time.Duration(value) * step,
	}, nil
}

// Apply shifts t by the operation
func (o Operation) Apply(t time.Time) time.Time {
	if o.Sign == Subtract {
		return t.Add(-o.Duration)
	}
	return t.Add(o.Duration)
}

// String renders the operation back in its surface syntax
func (o Operation) String() string {
	return o.Sign.String() + strconv.FormatInt(o.Value, 10) + o.Unit.String()
}
