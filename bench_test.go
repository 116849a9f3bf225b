package phamt

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

var benchKeyCount = []int{10, 100, 1_000, 10_000, 100_000}

func benchRandomKeys(prng *rand.Rand, n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = prng.Uint64()
	}
	return keys
}

func BenchmarkAssocRandom(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := benchRandomKeys(prng, n)

		m := Empty64[int]()
		for i, k := range keys {
			m = m.Assoc(k, i)
		}
		probe := keys[prng.IntN(len(keys))]

		b.Run(fmt.Sprintf("replace_into_%d", n), func(b *testing.B) {
			for b.Loop() {
				m = m.Assoc(probe, 42)
			}
		})

		b.Run(fmt.Sprintf("insert_into_%d", n), func(b *testing.B) {
			fresh := prng.Uint64()
			for b.Loop() {
				_ = m.Assoc(fresh, 42)
			}
		})
	}
}

func BenchmarkLookup(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := benchRandomKeys(prng, n)

		m := Empty64[int]()
		for i, k := range keys {
			m = m.Assoc(k, i)
		}
		hit := keys[prng.IntN(len(keys))]
		miss := prng.Uint64()

		b.Run(fmt.Sprintf("hit_in_%d", n), func(b *testing.B) {
			for b.Loop() {
				m.Lookup(hit)
			}
		})

		b.Run(fmt.Sprintf("miss_in_%d", n), func(b *testing.B) {
			for b.Loop() {
				m.Lookup(miss)
			}
		})
	}
}

func BenchmarkDissoc(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := benchRandomKeys(prng, n)

		m := Empty64[int]()
		for i, k := range keys {
			m = m.Assoc(k, i)
		}
		probe := keys[prng.IntN(len(keys))]

		b.Run(fmt.Sprintf("from_%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = m.Dissoc(probe)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := benchRandomKeys(prng, n)

		m := EmptyRaw64[int]()
		for i, k := range keys {
			m = m.Assoc(k, i)
		}
		probe := keys[prng.IntN(len(keys))]
		incr := func(found bool, v int) (int, bool) {
			if found {
				return v + 1, true
			}
			return 1, true
		}

		b.Run(fmt.Sprintf("counter_in_%d", n), func(b *testing.B) {
			for b.Loop() {
				m = m.Apply(probe, incr)
			}
		})
	}
}

func BenchmarkAll(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := benchRandomKeys(prng, n)

		m := Empty64[int]()
		for i, k := range keys {
			m = m.Assoc(k, i)
		}

		b.Run(fmt.Sprintf("range_over_%d", n), func(b *testing.B) {
			for b.Loop() {
				for range m.All() {
				}
			}
			b.ReportMetric(float64(b.Elapsed())/float64(b.N)/float64(n), "ns/key")
		})
	}
}
