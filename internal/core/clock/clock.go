// Package clock supplies the "current instant" and local UTC offset the converter needs
// Both values come from one Snapshot so a single call never mixes two readings
package clock

import "time"

// Snapshot is one reading of the wall clock
type Snapshot struct {
	// Now is the current instant in UTC
	Now time.Time
	// Zone is the local offset frozen at read time
	Zone *time.Location
}

// Clock produces snapshots; System for real use, Fixed for tests
type Clock interface {
	Snapshot() Snapshot
}

// nowFn is a seam for tests
var nowFn = time.Now

// System reads the process wall clock and local zone
type System struct{}

// Snapshot implements Clock
// The local zone is reduced to a fixed offset so later arithmetic never consults the tz database
func (System) Snapshot() Snapshot {
	t := nowFn()
	name, offset := t.Zone()
	return Snapshot{
		Now:  t.UTC(),
		Zone: time.FixedZone(name, offset),
	}
}

// Fixed always returns the same snapshot
type Fixed struct {
	At     time.Time
	Offset time.Duration
}

// Snapshot implements Clock
func (f Fixed) Snapshot() Snapshot {
	return Snapshot{
		Now:  f.At.UTC(),
		Zone: FixedOffset(f.Offset),
	}
}

// FixedOffset returns an unnamed zone at the given offset east of UTC
func FixedOffset(d time.Duration) *time.Location {
	return time.FixedZone("", int(d/time.Second))
}
