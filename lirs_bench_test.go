package lirs_test

import (
	"fmt"
	"testing"

	hashicorplru "github.com/hashicorp/golang-lru/v2"
	"github.com/kevburnsjr/lirs"
)

// benchCache is the minimal shape both the LIRS cache and hashicorp's plain
// LRU satisfy, letting the same drive loop exercise either.
type benchCache[K comparable, V any] interface {
	Get(K) (V, bool)
	Put(K, V)
}

type lruWrapper[K comparable, V any] struct {
	*hashicorplru.Cache[K, V]
}

func (w lruWrapper[K, V]) Put(key K, value V) { w.Add(key, value) }

// BenchmarkLoopWorkload drives both caches through a loop larger than their
// capacity. LIRS should retain a non-zero asymptotic hit rate where strict
// LRU degrades toward 0%, since every access evicts the key that will be
// needed next.
func BenchmarkLoopWorkload(b *testing.B) {
	for _, capacity := range []int{8, 32, 128} {
		b.Run(fmt.Sprintf("Cap%d", capacity), func(b *testing.B) {
			loop := make([]int, capacity+1)
			for i := range loop {
				loop[i] = i
			}
			b.Run("LIRS", newLoopBenchmark(loop, func() benchCache[int, int] {
				cache, err := lirs.New[int, int](capacity, lirs.WithHIRRatio(0.2))
				if err != nil {
					b.Fatal(err)
				}
				return cache
			}))
			b.Run("LRU", newLoopBenchmark(loop, func() benchCache[int, int] {
				cache, err := hashicorplru.New[int, int](capacity)
				if err != nil {
					b.Fatal(err)
				}
				return lruWrapper[int, int]{cache}
			}))
		})
	}
}

func newLoopBenchmark(loop []int, ctor func() benchCache[int, int]) func(b *testing.B) {
	return func(b *testing.B) {
		cache := ctor()
		for _, k := range loop {
			cache.Put(k, k)
		}
		b.ResetTimer()
		var hits, misses int64
		for i := 0; i < b.N; i++ {
			key := loop[i%len(loop)]
			if _, ok := cache.Get(key); ok {
				hits++
				continue
			}
			misses++
			cache.Put(key, key)
		}
		total := float64(hits + misses)
		b.ReportMetric(float64(hits)/total*100, "hit_rate_pct")
	}
}
