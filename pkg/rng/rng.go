package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG is a deterministic random generator derived from a master seed.
// The derivation follows the formula:
//
//	seed = H(masterSeed, stageName, configHash)
//
// where H is SHA-256 and the first 8 bytes are used as the uint64 seed.
type RNG struct {
	seed      uint64
	stageName string
	src       *splitMix64
	source    *rand.Rand
}

// NewRNG creates an RNG by deriving a sub-seed from the master seed via
// SHA-256 over masterSeed, stageName, and configHash. Same inputs always
// produce the same seed and therefore the same sequence.
func NewRNG(masterSeed uint64, stageName string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	src := newSplitMix64(derivedSeed)
	return &RNG{
		seed:      derivedSeed,
		stageName: stageName,
		src:       src,
		source:    rand.New(src),
	}
}

// RNGState is an opaque snapshot of an RNG's internal state, produced by
// Snapshot and consumed by Restore.
type RNGState struct {
	state uint64
}

// Snapshot captures the RNG's current state.
func (r *RNG) Snapshot() RNGState {
	return RNGState{state: r.src.state}
}

// Restore resets the RNG to a previously captured state, undoing any
// draws made since that snapshot was taken.
func (r *RNG) Restore(s RNGState) {
	r.src.state = s.state
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (r *RNG) Uint64() uint64 {
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Seed returns the derived seed for this RNG.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StageName returns the stage name this RNG was created for.
func (r *RNG) StageName() string {
	return r.stageName
}

// IntRange returns a pseudo-random integer in [min, max]. Panics if
// min > max.
func (r *RNG) IntRange(min, max int) int {
	if min > max {
		panic("rng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Bool returns a pseudo-random boolean value.
func (r *RNG) Bool() bool {
	return r.source.Intn(2) == 1
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if all weights are
// zero or weights is empty.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	randVal := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
