// Package entropy supplies the raw randomness feeding the field.
// The primary source pulls OS entropy; when that is unavailable the
// animation continues on a clearly weaker seeded generator instead of
// halting.
package entropy

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Source fills a buffer with one byte of randomness per grid cell.
type Source interface {
	Fill(buf []byte) error
}

// OSSource reads from the operating system entropy pool.
type OSSource struct{}

// Fill reads len(buf) bytes of OS entropy.
func (OSSource) Fill(buf []byte) error {
	_, err := cryptorand.Read(buf)
	return err
}

// SeededSource is the degraded fallback: a time-seeded PRNG.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a fallback source seeded from the wall clock.
func NewSeededSource() *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Fill fills the buffer from the PRNG. Never fails.
func (s *SeededSource) Fill(buf []byte) error {
	s.rng.Read(buf)
	return nil
}

// NewSource probes the OS pool once and falls back to the seeded
// generator if it is unavailable.
func NewSource() Source {
	var probe [1]byte
	if _, err := cryptorand.Read(probe[:]); err != nil {
		return NewSeededSource()
	}
	return OSSource{}
}

// Roller drives macro event decisions (glitches, spawn rolls, halo
// distribution). It is seeded from the source at construction so even the
// coarse rolls trace back to real entropy when available.
type Roller struct {
	rng *rand.Rand
}

// NewRoller seeds a roller from the given source.
func NewRoller(src Source) *Roller {
	var seed [8]byte
	if err := src.Fill(seed[:]); err != nil {
		return &Roller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	return &Roller{rng: rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))}
}

// NewSeededRoller creates a roller on a fixed seed, for deterministic tests.
func NewSeededRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform sample in [0, 1).
func (r *Roller) Float64() float64 { return r.rng.Float64() }

// IntN returns a uniform int in [0, n).
func (r *Roller) IntN(n int) int { return r.rng.Intn(n) }

// RangeInt returns a uniform int in [lo, hi].
func (r *Roller) RangeInt(lo, hi int) int { return lo + r.rng.Intn(hi-lo+1) }

// UniformF returns a uniform float in [lo, hi).
func (r *Roller) UniformF(lo, hi float64) float64 { return lo + r.rng.Float64()*(hi-lo) }
