package lirs_test

import (
	"strings"
	"testing"

	"github.com/kevburnsjr/lirs"
)

func TestDump(t *testing.T) {
	cache := newCache[int, string](t, 5, lirs.WithHIRRatio(0.2))
	cache.Put(1, "A")
	cache.Put(2, "B")

	var buf strings.Builder
	if err := cache.Dump(&buf); err != nil {
		t.Fatalf("Dump returned an error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"[Capacity]", "[Stack S]", "[Queue Q]", "[Resident Values]", "(empty)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Dump output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpEmptyCache(t *testing.T) {
	cache := newCache[int, string](t, 5)
	var buf strings.Builder
	if err := cache.Dump(&buf); err != nil {
		t.Fatalf("Dump returned an error: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "(empty)") != 3 {
		t.Fatalf("expected 3 (empty) sections for an empty cache, got:\n%s", out)
	}
}
