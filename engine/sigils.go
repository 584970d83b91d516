package engine

import (
	"math"

	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/entropy"
	"github.com/lmtlss/scryer/sigil"
)

// stepSigilSpawns fires at most one spawn per frame from two independent
// paths: the always-active baseline, and a boost path that requires the
// open intent gate. Centers draw from an area larger than the visible
// grid so sigils can sit half off-screen.
func (s *State) stepSigilSpawns(t float64, width, height int, roll *entropy.Roller, reg *sigil.Registry) {
	if reg.Empty() {
		return
	}

	baseSpawn := s.AvgEntropy > constant.SpawnEntropyMean &&
		roll.Float64() < constant.SpawnBaseChance

	meanRelief := math.Min(constant.BoostMeanReliefCap, s.IntentDilation*constant.BoostMeanReliefRate)
	boostChance := math.Min(constant.BoostChanceCap, constant.BoostChanceBase+s.IntentDilation*constant.BoostChanceRate)
	boostSpawn := s.GateOpen &&
		s.AvgEntropy > constant.BoostEntropyMean-meanRelief &&
		roll.Float64() < boostChance

	if !baseSpawn && !boostSpawn {
		return
	}

	w := float64(width)
	h := float64(height)
	dilationScale := 1.0
	lifeDilation := 1.0
	if s.GateOpen {
		dilationScale += s.IntentDilation * constant.SpawnScaleDilation
		lifeDilation += s.IntentDilation * constant.SpawnLifeDilation
	}

	s.Sigils = append(s.Sigils, SigilInstance{
		MaskID:    reg.PickWeighted(roll.Float64()),
		CX:        roll.UniformF(-w*0.5, w*1.5),
		CY:        roll.UniformF(-h*0.5, h*1.5),
		Scale:     roll.UniformF(h*constant.SpawnScaleMinFactor, h*constant.SpawnScaleMaxFactor) * dilationScale,
		SpawnTime: t,
		Life:      roll.UniformF(constant.SpawnLifeMin, constant.SpawnLifeMax) * lifeDilation,
	})
}

// purgeSigils expires instances purely by age versus their own lifespan.
func (s *State) purgeSigils(t float64) {
	alive := s.Sigils[:0]
	for _, sg := range s.Sigils {
		if t-sg.SpawnTime <= sg.Life {
			alive = append(alive, sg)
		}
	}
	s.Sigils = alive
}

// stepIgnitions gives every active sigil an independent chance to ignite:
// a random probe near its center is tested against its own outline and,
// if it lands on a thread, seeds the excitation automaton with no halo.
func (s *State) stepIgnitions(width, height int, roll *entropy.Roller, reg *sigil.Registry) {
	chance := constant.IgniteChanceBase
	if s.GateOpen {
		chance += s.IntentDilation * constant.IgniteChanceDilation
	}
	if chance > constant.IgniteChanceCap {
		chance = constant.IgniteChanceCap
	}

	for _, sg := range s.Sigils {
		if roll.Float64() >= chance {
			continue
		}
		rx := int(sg.CX + roll.UniformF(-sg.Scale*2.0, sg.Scale*2.0))
		ry := int(sg.CY + roll.UniformF(-sg.Scale, sg.Scale))
		if rx < 0 || ry < 0 || rx >= width || ry >= height {
			continue
		}
		// Generic zero phase noise for the ignition check only.
		if sigil.PointOnSigil(float64(rx), float64(ry), sg.CX, sg.CY, sg.Scale, 0.0, sg.MaskFor(reg)) {
			s.Inject(rx, ry, 1.0, width, height, roll, s.Sparks, false)
		}
	}
}
