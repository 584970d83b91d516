package engine

import (
	"math"
	"testing"

	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/entropy"
)

func TestBuildupFiresPulse(t *testing.T) {
	st := NewState()
	roll := entropy.NewSeededRoller(5)
	st.AvgEntropy = 1.0

	st.stepPulses(0.0, 120, 40, roll)

	// (1.0 - 0.5) * 15 = 7.5 crosses the 2.0 threshold immediately.
	if len(st.Pulses) != 1 {
		t.Fatalf("Expected 1 pulse, got %d", len(st.Pulses))
	}
	if st.EntropyBuildup != 0.0 {
		t.Errorf("Expected buildup reset after firing, got %v", st.EntropyBuildup)
	}

	p := st.Pulses[0]
	if p.CX < 120/2-120/3 || p.CX > 120/2+120/3 {
		t.Errorf("Pulse center x %d outside spawn band", p.CX)
	}
	if p.CY < 40/2-40/3 || p.CY > 40/2+40/3 {
		t.Errorf("Pulse center y %d outside spawn band", p.CY)
	}
}

func TestBuildupAccumulatesBelowThreshold(t *testing.T) {
	st := NewState()
	roll := entropy.NewSeededRoller(5)
	st.AvgEntropy = 0.52

	st.stepPulses(0.0, 120, 40, roll)

	want := (0.52 - 0.5) * constant.BuildupGainRate
	if math.Abs(st.EntropyBuildup-want) > 1e-12 {
		t.Errorf("Expected buildup %v, got %v", want, st.EntropyBuildup)
	}
	if len(st.Pulses) != 0 {
		t.Errorf("Expected no pulse below threshold, got %d", len(st.Pulses))
	}
}

func TestBuildupDecaysAndFloors(t *testing.T) {
	st := NewState()
	roll := entropy.NewSeededRoller(5)
	st.AvgEntropy = 0.2
	st.EntropyBuildup = 0.07

	st.stepPulses(0.0, 120, 40, roll)
	if math.Abs(st.EntropyBuildup-0.02) > 1e-12 {
		t.Errorf("Expected buildup 0.02, got %v", st.EntropyBuildup)
	}

	st.stepPulses(0.0, 120, 40, roll)
	if st.EntropyBuildup != 0.0 {
		t.Errorf("Expected buildup floored at 0, got %v", st.EntropyBuildup)
	}
}

func TestPulsePurgedByAge(t *testing.T) {
	st := NewState()
	roll := entropy.NewSeededRoller(5)
	st.AvgEntropy = 0.0
	st.Pulses = []Pulse{{CX: 10, CY: 10, SpawnTime: 0.0}}

	st.stepPulses(constant.PulseDuration-0.1, 120, 40, roll)
	if len(st.Pulses) != 1 {
		t.Fatalf("Expected pulse alive before its duration, got %d", len(st.Pulses))
	}

	st.stepPulses(constant.PulseDuration+0.1, 120, 40, roll)
	if len(st.Pulses) != 0 {
		t.Errorf("Expected pulse purged after its duration, got %d", len(st.Pulses))
	}
}

func TestDilationLowersThreshold(t *testing.T) {
	st := NewState()
	roll := entropy.NewSeededRoller(5)
	st.AvgEntropy = 0.6
	st.IntentDilation = 1.5

	// Buildup reaches 0.2 + 1.5 = 1.7: below the undilated 2.0 threshold
	// but above the dilated 2.0 - 1.5*0.25 = 1.625.
	st.EntropyBuildup = 0.2
	st.stepPulses(0.0, 120, 40, roll)
	if len(st.Pulses) != 1 {
		t.Errorf("Expected dilated threshold 1.625 crossed by buildup 1.7, got %d pulses", len(st.Pulses))
	}
}

func TestCoherenceWalkerRelaxes(t *testing.T) {
	st := NewState()
	st.TargetCoherence = 1.2
	st.CoherenceWalker = 0.5

	// The target may re-roll during the step, but the relaxation delta is
	// exact against whatever target the step settled on.
	roll := entropy.NewSeededRoller(11)
	before := st.CoherenceWalker
	st.stepCoherence(roll)
	want := before + (st.TargetCoherence-before)*constant.CoherenceRelaxRate
	if math.Abs(st.CoherenceWalker-want) > 1e-12 {
		t.Errorf("Expected walker %v after one relax step, got %v", want, st.CoherenceWalker)
	}
	if st.Emergence < constant.EmergenceFloor || st.Emergence > 1.0 {
		t.Errorf("Expected emergence in [%v, 1], got %v", constant.EmergenceFloor, st.Emergence)
	}
}
