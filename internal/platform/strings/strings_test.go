package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"*"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("IfEmpty(nil) = %#v", got)
	}
	in := []string{"a", "b"}
	if got := IfEmpty(in, def); len(got) != 2 || got[0] != "a" {
		t.Fatalf("IfEmpty(in) = %#v", got)
	}
}

func TestCompact(t *testing.T) {
	got := Compact([]string{" https://a.example ", "", "  ", "b"})
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "b" {
		t.Fatalf("Compact = %#v", got)
	}
	if got := Compact(nil); len(got) != 0 {
		t.Fatalf("Compact(nil) = %#v", got)
	}
}
