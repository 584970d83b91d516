package engine

import (
	"github.com/lmtlss/scryer/entropy"
	"github.com/lmtlss/scryer/sigil"
)

// Step advances the simulation by one frame. pool must hold width*height
// entropy bytes for this frame; t is elapsed wall-clock seconds. The
// order is fixed: intent analysis, pulse scheduling, coherence walk,
// sigil spawn/expiry, ignition, excitation decay, spark propagation.
// Everything the compositor reads afterwards is settled here.
func (s *State) Step(pool []byte, t float64, width, height int, roll *entropy.Roller, reg *sigil.Registry) {
	s.relaxIntent(AnalyzeIntent(pool))
	s.AvgEntropy = meanEntropy(pool)

	s.stepPulses(t, width, height, roll)
	s.stepCoherence(roll)

	s.stepSigilSpawns(t, width, height, roll, reg)
	s.purgeSigils(t)
	s.stepIgnitions(width, height, roll, reg)

	s.decayExcitation()
	s.propagateSparks(pool, width, height, roll, reg)
}
