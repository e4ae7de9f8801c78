// Package convert turns a date argument and an optional operation into the
// three-line dconv output: RFC3339 in UTC, RFC3339 at the local offset, epoch millis
package convert

import (
	"strconv"
	"strings"
	"time"

	"dconv/internal/core/clock"
	"dconv/internal/core/dateinput"
	"dconv/internal/core/operation"
)

// Layout is RFC3339 with optional fractional seconds and a numeric offset, so UTC prints +00:00
const Layout = "2006-01-02T15:04:05.999999999-07:00"

// Converter is stateless apart from its clock and safe for concurrent use
type Converter struct {
	clock clock.Clock
}

// New returns a Converter reading the given clock, clock.System{} when nil
func New(c clock.Clock) *Converter {
	if c == nil {
		c = clock.System{}
	}
	return &Converter{clock: c}
}

// Result is a finished conversion
type Result struct {
	Input     dateinput.Input
	Operation *operation.Operation
	At        time.Time
	Zone      *time.Location
}

// Convert classifies date, applies op when non-empty and returns the result
// The clock is read once up front even when date doesn't need it
func (c *Converter) Convert(date, op string) (Result, error) {
	snap := c.clock.Snapshot()

	in, err := dateinput.Classify(date, snap.Now)
	if err != nil {
		return Result{}, err
	}

	res := Result{Input: in, At: in.At, Zone: snap.Zone}
	if op == "" {
		return res, nil
	}

	o, err := operation.Parse(op)
	if err != nil {
		return Result{}, err
	}
	res.Operation = &o
	res.At = o.Apply(in.At)
	return res, nil
}

// UTC renders the resulting instant as RFC3339 in UTC
func (r Result) UTC() string { return r.At.UTC().Format(Layout) }

// Local renders the resulting instant as RFC3339 at the snapshot's local offset
func (r Result) Local() string {
	zone := r.Zone
	if zone == nil {
		zone = time.UTC
	}
	return r.At.In(zone).Format(Layout)
}

// Millis is the resulting instant as Unix epoch milliseconds
func (r Result) Millis() int64 { return r.At.UnixMilli() }

// Lines returns the three output lines in order
func (r Result) Lines() []string {
	return []string{r.UTC(), r.Local(), strconv.FormatInt(r.Millis(), 10)}
}

// String joins Lines with newlines, no trailing newline
func (r Result) String() string { return strings.Join(r.Lines(), "\n") }
