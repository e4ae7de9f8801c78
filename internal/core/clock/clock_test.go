package clock

import (
	"testing"
	"time"

	kit "dconv/internal/platform/testkit"
)

func TestSystem_SnapshotFreezesOffset(t *testing.T) {
	kit.Serial(t)

	cest := time.FixedZone("CEST", 2*60*60)
	at := time.Date(2025, 6, 24, 22, 18, 0, 0, cest)
	kit.Swap(t, &nowFn, func() time.Time { return at })

	s := System{}.Snapshot()
	if s.Now.Location() != time.UTC {
		t.Fatalf("Now should be UTC, got %v", s.Now.Location())
	}
	if !s.Now.Equal(at) {
		t.Fatalf("Now = %v, want %v", s.Now, at)
	}
	name, off := s.Now.In(s.Zone).Zone()
	if name != "CEST" || off != 7200 {
		t.Fatalf("zone = %s %d, want CEST 7200", name, off)
	}
}

func TestFixed_Snapshot(t *testing.T) {
	at := time.Date(2025, 6, 24, 20, 18, 0, 0, time.UTC)
	c := Fixed{At: at, Offset: -5*time.Hour - 30*time.Minute}

	s := c.Snapshot()
	if !s.Now.Equal(at) {
		t.Fatalf("Now = %v", s.Now)
	}
	if got := s.Now.In(s.Zone).Format(time.RFC3339); got != "2025-06-24T14:48:00-05:30" {
		t.Fatalf("local render = %s", got)
	}
	// repeated reads are identical
	if s2 := c.Snapshot(); !s2.Now.Equal(s.Now) {
		t.Fatalf("Fixed clock moved")
	}
}
