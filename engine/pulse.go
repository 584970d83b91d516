package engine

import (
	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/entropy"
)

// meanEntropy averages the leading sample of the pool, normalized to
// [0,1].
func meanEntropy(pool []byte) float64 {
	if len(pool) == 0 {
		return 0.0
	}
	n := constant.MeanSampleCap
	if len(pool) < n {
		n = len(pool)
	}
	sum := 0
	for _, b := range pool[:n] {
		sum += int(b)
	}
	return float64(sum) / float64(n) / 255.0
}

// stepPulses accumulates entropy buildup and fires toroidal pulses. The
// buildup gains faster than it decays, biasing toward frequent events;
// intent dilation lowers the firing threshold.
func (s *State) stepPulses(t float64, width, height int, roll *entropy.Roller) {
	if s.AvgEntropy > constant.BuildupTriggerMean {
		s.EntropyBuildup += (s.AvgEntropy - 0.5) * constant.BuildupGainRate
	} else {
		s.EntropyBuildup -= constant.BuildupDecayStep
		if s.EntropyBuildup < 0.0 {
			s.EntropyBuildup = 0.0
		}
	}

	threshold := constant.GateThreshold - s.IntentDilation*constant.GateThresholdDilation
	if threshold < constant.GateThresholdFloor {
		threshold = constant.GateThresholdFloor
	}

	if s.EntropyBuildup > threshold {
		s.EntropyBuildup = 0.0
		s.Pulses = append(s.Pulses, Pulse{
			CX:        width/2 + roll.RangeInt(-width/3, width/3),
			CY:        height/2 + roll.RangeInt(-height/3, height/3),
			SpawnTime: t,
		})
	}

	// Purge expired pulses in place.
	alive := s.Pulses[:0]
	for _, p := range s.Pulses {
		if t-p.SpawnTime <= constant.PulseDuration {
			alive = append(alive, p)
		}
	}
	s.Pulses = alive
}

// stepCoherence random-walks the global emergence level. The target
// re-rolls intermittently and the walker relaxes toward it, so the field
// breathes rather than flickers.
func (s *State) stepCoherence(roll *entropy.Roller) {
	if roll.Float64() < constant.CoherenceRerollChance {
		s.TargetCoherence = roll.UniformF(constant.CoherenceTargetMin, constant.CoherenceTargetMax)
	}
	s.CoherenceWalker += (s.TargetCoherence - s.CoherenceWalker) * constant.CoherenceRelaxRate

	coherence := s.CoherenceWalker
	if coherence < constant.EmergenceFloor {
		coherence = constant.EmergenceFloor
	} else if coherence > 1.0 {
		coherence = 1.0
	}

	emergence := coherence
	if s.GateOpen {
		emergence += s.IntentDilation * 0.05
	}
	if emergence > 1.0 {
		emergence = 1.0
	}
	s.Emergence = emergence
}

// Coherence returns the clamped walker value, used by the logo overlay.
func (s *State) Coherence() float64 {
	c := s.CoherenceWalker
	if c < constant.EmergenceFloor {
		return constant.EmergenceFloor
	}
	if c > 1.0 {
		return 1.0
	}
	return c
}
