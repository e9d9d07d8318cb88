package rhmap

import (
	"math"
	"math/rand"
	"testing"
)

const benchSize = 1 << 16

func genBenchKeys(n int) []uint64 {
	rng := rand.New(rand.NewSource(42))

	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rng.Uint64() >> 1
	}

	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := genBenchKeys(benchSize)

	b.Run("variant=stdMap", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			m := make(map[uint64]struct{}, benchSize)
			for _, k := range keys {
				m[k] = struct{}{}
			}
		}
	})

	b.Run("variant=table", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			tt := New[uint64](math.MaxUint64, benchSize)
			for _, k := range keys {
				tt.Insert(k)
			}
		}
	})
}

func BenchmarkHas_Hit(b *testing.B) {
	keys := genBenchKeys(benchSize)

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[uint64]struct{}, benchSize)
		for _, k := range keys {
			m[k] = struct{}{}
		}

		b.ResetTimer()
		for b.Loop() {
			for _, k := range keys {
				if _, ok := m[k]; !ok {
					b.Fatal("miss")
				}
			}
		}
	})

	b.Run("variant=table", func(b *testing.B) {
		tt := New[uint64](math.MaxUint64, benchSize)
		for _, k := range keys {
			tt.Insert(k)
		}

		b.ResetTimer()
		for b.Loop() {
			for _, k := range keys {
				if !tt.Has(k) {
					b.Fatal("miss")
				}
			}
		}
	})
}

func BenchmarkHas_Miss(b *testing.B) {
	keys := genBenchKeys(benchSize)
	probes := genBenchKeys(benchSize * 2)[benchSize:]

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[uint64]struct{}, benchSize)
		for _, k := range keys {
			m[k] = struct{}{}
		}

		b.ResetTimer()
		for b.Loop() {
			for _, k := range probes {
				_, _ = m[k]
			}
		}
	})

	b.Run("variant=table", func(b *testing.B) {
		tt := New[uint64](math.MaxUint64, benchSize)
		for _, k := range keys {
			tt.Insert(k)
		}

		b.ResetTimer()
		for b.Loop() {
			for _, k := range probes {
				tt.Has(k)
			}
		}
	})
}
