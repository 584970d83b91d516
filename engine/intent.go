package engine

import (
	"math"

	"github.com/lmtlss/scryer/constant"
)

// IntentReading is the per-frame output of the entropy-convergence
// detector.
type IntentReading struct {
	Hits     int
	GateOpen bool
	ZScore   float64
	Target   float64
}

// AnalyzeIntent samples a fixed-size strided subset of the entropy pool
// and counts near-duplicate or near-complementary byte pairs. Under
// uniform independent bytes each pair matches with probability 3/256; the
// count's z-score maps to a bounded dilation target so statistical
// anomalies can only ever add a bonus on top of baseline behavior.
func AnalyzeIntent(pool []byte) IntentReading {
	if len(pool) == 0 {
		return IntentReading{}
	}

	count := constant.FocusSampleCount
	if len(pool) < count {
		count = len(pool)
	}
	stride := len(pool) / count
	if stride < 1 {
		stride = 1
	}

	hits := 0
	cursor := 0
	for i := 0; i < count; i++ {
		b1 := int(pool[cursor])
		b2 := int(pool[(cursor+stride)%len(pool)])
		delta := b1 - b2
		if delta < 0 {
			delta = -delta
		}
		if delta <= 1 || delta >= 254 {
			hits++
		}
		cursor += stride
		if cursor >= len(pool) {
			cursor -= len(pool)
		}
	}

	p := constant.PairMatchProbability
	expected := float64(count) * p
	variance := math.Max(1e-6, float64(count)*p*(1.0-p))
	z := (float64(hits) - expected) / math.Sqrt(variance)

	target := z / 4.0
	if target < 0.0 {
		target = 0.0
	} else if target > constant.IntentTargetCap {
		target = constant.IntentTargetCap
	}

	return IntentReading{
		Hits:     hits,
		GateOpen: hits >= constant.ConvergenceGateHits,
		ZScore:   z,
		Target:   target,
	}
}

// relaxIntent low-passes the dilation toward the frame's target.
func (s *State) relaxIntent(r IntentReading) {
	s.GateOpen = r.GateOpen
	s.IntentDilation += (r.Target - s.IntentDilation) * constant.IntentRelaxRate
}
