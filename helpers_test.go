package lirs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/kevburnsjr/lirs"
)

// Fixed RNG seed for reproducibility.
const rngSeed = 1

func newReproducibleRNG() *rand.Rand {
	return rand.New(rand.NewSource(rngSeed))
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }

func newCache[K comparable, V any](
	tb testing.TB, capacity int, opts ...lirs.Option,
) *lirs.Cache[K, V] {
	tb.Helper()
	cache, err := lirs.New[K, V](capacity, opts...)
	if err != nil {
		tb.Fatal(err)
	}
	return cache
}

func mustMiss[K comparable, V any](tb testing.TB, cache *lirs.Cache[K, V], key K) {
	tb.Helper()
	if value, ok := cache.Get(key); ok {
		tb.Fatalf("expected miss for key %v, got %v", key, value)
	}
}

func mustGet[K comparable, V any](tb testing.TB, cache *lirs.Cache[K, V], key K) V {
	tb.Helper()
	value, ok := cache.Get(key)
	if !ok {
		tb.Fatalf("expected hit for key %v", key)
		var zero V
		return zero
	}
	return value
}

func checkGet[K comparable, V comparable](
	tb testing.TB, cache *lirs.Cache[K, V], key K, want V,
) {
	tb.Helper()
	got := mustGet(tb, cache, key)
	if got != want {
		tb.Fatalf("value mismatch for key %v\n\tgot: %v\n\twant: %v", key, got, want)
	}
}

func checkSize[K comparable, V any](tb testing.TB, cache *lirs.Cache[K, V], want int) {
	tb.Helper()
	if got := cache.Size(); got != want {
		tb.Fatalf("size mismatch\n\tgot: %d\n\twant: %d", got, want)
	}
}

func stackKeys[K comparable, V any](cache *lirs.Cache[K, V]) []K {
	keys := make([]K, 0)
	for key := range cache.Stack() {
		keys = append(keys, key)
	}
	return keys
}

func queueKeys[K comparable, V any](cache *lirs.Cache[K, V]) []K {
	keys := make([]K, 0)
	for key := range cache.Queue() {
		keys = append(keys, key)
	}
	return keys
}

func bottomOfQueue[K comparable, V any](cache *lirs.Cache[K, V]) (K, bool) {
	var last K
	found := false
	for key := range cache.Queue() {
		last = key
		found = true
	}
	return last, found
}
