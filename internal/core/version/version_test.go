package version

import (
	"testing"

	kit "dconv/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	bi := Info()
	if bi.Service != "dconv" {
		t.Fatalf("Service = %q, want dconv", bi.Service)
	}
	if bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected defaults: %+v", bi)
	}
}

func TestInfo_LdflagsOverride(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &version, "v1.2.3")
	kit.Swap(t, &commit, "abc123")

	bi := Info()
	if bi.Version != "v1.2.3" || bi.Commit != "abc123" {
		t.Fatalf("override not visible: %+v", bi)
	}
	if got := bi.String(); got != "v1.2.3 (commit abc123, built unknown)" {
		t.Fatalf("String() = %q", got)
	}
}
