// Package dice supplies the random draws used by encounters, combat and loot.
//
// # Determinism
//
// Every consumer takes a Source. Given the same seed passed to New and the
// same sequence of player inputs, a battle produces the same log, the same
// damage and the same loot.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the subset of *rand.Rand the engine draws from.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// New returns a seeded source.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Between returns a uniform int in [lo, hi], inclusive on both ends.
// A single-value range returns lo without drawing.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Weighted is one entry of a weighted pick.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Pick draws r = Float64()*total and returns the first entry whose running
// weight reaches r. An empty slice returns the zero value and false.
func Pick[T any](src Source, entries []Weighted[T]) (T, bool) {
	var zero T
	if len(entries) == 0 {
		return zero, false
	}
	total := 0.0
	for _, e := range entries {
		total += e.Weight
	}
	r := src.Float64() * total
	acc := 0.0
	for _, e := range entries {
		acc += e.Weight
		if r <= acc {
			return e.Value, true
		}
	}
	return entries[len(entries)-1].Value, true
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
