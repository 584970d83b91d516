package engine

import (
	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/entropy"
	"github.com/lmtlss/scryer/sigil"
)

var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1},
}

// Inject raises a cell's excitation to intensity (never lowers it) and
// records it in the given spark set. With the halo enabled it also
// scatters weaker intensity to random neighbors and occasionally lays a
// short decaying directional spike trail, so ignitions read fragmented
// rather than blob-like.
func (s *State) Inject(x, y int, intensity float64, width, height int, roll *entropy.Roller, sparks map[Point]struct{}, withHalo bool) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}

	p := Point{x, y}
	if intensity > s.Excite[p] {
		s.Excite[p] = intensity
	}
	sparks[p] = struct{}{}

	if !withHalo {
		return
	}

	for _, d := range neighborOffsets {
		if roll.Float64() < constant.HaloChance {
			nx, ny := x+d[0], y+d[1]
			if nx >= 0 && nx < width && ny >= 0 && ny < height {
				halo := intensity * roll.UniformF(constant.HaloScaleMin, constant.HaloScaleMax)
				np := Point{nx, ny}
				if halo > s.Excite[np] {
					s.Excite[np] = halo
				}
			}
		}
	}

	if roll.Float64() < constant.SpikeChance {
		d := neighborOffsets[roll.IntN(len(neighborOffsets))]
		sx, sy := x, y
		spike := intensity * roll.UniformF(constant.SpikeScaleMin, constant.SpikeScaleMax)
		steps := roll.RangeInt(1, constant.SpikeStepsMax)
		for i := 0; i < steps; i++ {
			sx += d[0]
			sy += d[1]
			if sx < 0 || sy < 0 || sx >= width || sy >= height {
				break
			}
			sp := Point{sx, sy}
			if spike > s.Excite[sp] {
				s.Excite[sp] = spike
			}
			spike *= roll.UniformF(constant.SpikeFalloffMin, constant.SpikeFalloffMax)
		}
	}
}

// decayExcitation lowers every active cell by the frame decay rate and
// removes anything at or below zero. The open gate slows decay slightly
// so excitement lingers longer.
func (s *State) decayExcitation() {
	decay := constant.DecayBase
	if s.GateOpen {
		decay -= s.IntentDilation * constant.DecayDilation
	}
	if decay < constant.DecayFloor {
		decay = constant.DecayFloor
	}

	for p, v := range s.Excite {
		v -= decay
		if v <= 0.0 {
			delete(s.Excite, p)
		} else {
			s.Excite[p] = v
		}
	}
}

// propagateSparks advances the automaton wavefront. Each spark's eight
// neighbors are candidates; a candidate must not be near-saturated and
// must lie on some active sigil's outline under its own entropy-derived
// phase noise. The spark set is replaced wholesale: only the newest wave
// advances.
func (s *State) propagateSparks(pool []byte, width, height int, roll *entropy.Roller, reg *sigil.Registry) {
	spread := constant.SpreadChanceBase
	if s.GateOpen {
		spread += s.IntentDilation * constant.SpreadChanceDilation
	}
	if spread > constant.SpreadChanceCap {
		spread = constant.SpreadChanceCap
	}

	next := s.nextSparks
	for p := range next {
		delete(next, p)
	}

	for sp := range s.Sparks {
		for _, d := range neighborOffsets {
			nx, ny := sp.X+d[0], sp.Y+d[1]
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if s.Excite[Point{nx, ny}] >= constant.SaturationCutoff {
				continue
			}

			localEnt := float64(pool[ny*width+nx]) / 255.0
			phaseNoise := localEnt * constant.LocalSigilPhaseNoise

			onSigil := false
			for _, sg := range s.Sigils {
				if sigil.PointOnSigil(float64(nx), float64(ny), sg.CX, sg.CY, sg.Scale, phaseNoise, sg.MaskFor(reg)) {
					onSigil = true
					break
				}
			}
			if !onSigil {
				continue
			}

			if roll.Float64() < spread {
				s.Inject(nx, ny, constant.PropagateIntensity, width, height, roll, next, false)
			}
		}
	}

	s.Sparks, s.nextSparks = next, s.Sparks
}
