// Package engine owns the frame-stepped simulation: the intent gate, the
// pulse and sigil schedulers, and the excitation diffusion automaton. All
// mutable state lives in State and is touched only inside Step, by the
// single frame-driver goroutine.
package engine

import "github.com/lmtlss/scryer/sigil"

// Point keys the sparse excitation grid.
type Point struct {
	X, Y int
}

// Pulse is a short-lived toroidal override event. Lifespan is the fixed
// constant.PulseDuration; expiry is purely by age.
type Pulse struct {
	CX, CY    int
	SpawnTime float64
}

// SigilInstance is one roaming sigil event. The center is fixed at spawn
// and may lie outside the visible grid; the instance drifts into view only
// through its geometry. Multiple instances may overlap.
type SigilInstance struct {
	MaskID    int
	CX, CY    float64
	Scale     float64
	SpawnTime float64
	Life      float64
}

// State carries everything that persists across frames.
type State struct {
	Pulses []Pulse
	Sigils []SigilInstance

	// Excite maps active cells to intensity in (0,1]. Entries at or
	// below zero are removed every frame.
	Excite map[Point]float64

	// Sparks is this frame's propagation front; it is swapped with
	// nextSparks and cleared rather than reallocated.
	Sparks     map[Point]struct{}
	nextSparks map[Point]struct{}

	EntropyBuildup  float64
	CoherenceWalker float64
	TargetCoherence float64
	IntentDilation  float64

	// Per-frame derived values, refreshed by Step.
	GateOpen   bool
	AvgEntropy float64
	Emergence  float64
}

// NewState initializes the walker at its midpoint rest value.
func NewState() *State {
	return &State{
		Excite:          make(map[Point]float64),
		Sparks:          make(map[Point]struct{}),
		nextSparks:      make(map[Point]struct{}),
		CoherenceWalker: 0.5,
		TargetCoherence: 0.5,
	}
}

// MaskFor resolves an instance's mask through the registry.
func (s *SigilInstance) MaskFor(reg *sigil.Registry) *sigil.Mask {
	return reg.MaskFor(s.MaskID)
}

// ExciteAt returns the excitation intensity at a cell, 0 if inactive.
func (s *State) ExciteAt(x, y int) float64 {
	return s.Excite[Point{x, y}]
}
