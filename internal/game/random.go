package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the only source of randomness the simulation reads. Every resolver
// and clock step draws from it in a fixed order so a seeded or scripted
// source reproduces a run exactly.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform index in [0, n). n must be > 0.
	IntN(n int) int
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
}

type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed int64) Rand {
	return pcgRand{r: seededRNG(seed)}
}

func (p pcgRand) Float64() float64 { return p.r.Float64() }

func (p pcgRand) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return p.r.IntN(n)
}

func (p pcgRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.r.IntN(hi-lo+1)
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// ScriptedRand replays queued draws. Floats are consumed by Float64, Ints by
// both IntN and IntRange (clamped into the requested range). When a queue
// runs dry Float64 returns DefaultFloat and the integer draws return their
// lower bound.
type ScriptedRand struct {
	Floats       []float64
	Ints         []int
	DefaultFloat float64
}

// NewQuietRand scripts a source whose default float never clears any of the
// clock's probability gates: weather holds, fires stay lit, no event starts.
func NewQuietRand() *ScriptedRand {
	return &ScriptedRand{DefaultFloat: 0.999}
}

func (s *ScriptedRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.DefaultFloat
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptedRand) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return clamp(s.nextInt(0), 0, n-1)
}

func (s *ScriptedRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return clamp(s.nextInt(lo), lo, hi)
}

func (s *ScriptedRand) nextInt(fallback int) int {
	if len(s.Ints) == 0 {
		return fallback
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v
}
