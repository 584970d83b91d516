// Package field computes the continuous scalar noise value behind every
// cell. It is a pure function of coordinates, elapsed time and the cell's
// entropy byte; nothing is cached because the warp depends on time.
package field

import (
	"math"

	"github.com/lmtlss/scryer/constant"
)

// Sample is the per-cell field evaluation. The interference scalars W1-W3
// are exposed because the compositor's fragmentation metric reuses them,
// and RX/RY feed the lightning and pulse-shear paths.
type Sample struct {
	Field float64 // layered interference value
	Pulse float64 // high-frequency possession gate
	RX    float64 // twice-warped x coordinate
	RY    float64 // twice-warped y coordinate
	W1    float64
	W2    float64
	W3    float64
}

// TimeBase returns the slow warp clock for an elapsed time.
func TimeBase(t float64) float64 {
	return t * constant.SchumannBase * 0.05
}

// TimePulse returns the fast possession clock for an elapsed time.
func TimePulse(t float64) float64 {
	return t * constant.Resonance * 0.5
}

// At evaluates the field for one cell. entVal is the cell's entropy byte
// normalized to [0,1].
func At(x, y int, t, entVal float64) Sample {
	tBase := TimeBase(t)
	tPulse := TimePulse(t)

	// Macro zoom plus a slow whole-field drift.
	xBase := float64(x)/constant.MacroZoomX + math.Cos(t*0.07)*constant.DriftAmplitude
	yBase := float64(y)/constant.MacroZoomY - math.Sin(t*0.05)*constant.DriftAmplitude

	// Fractal domain warping: the field folds recursively onto itself.
	qx := xBase + math.Sin(yBase*constant.Phi+tBase)*constant.WarpAmpFirst
	qy := yBase + math.Cos(xBase*constant.EConst-tBase*0.8)*constant.WarpAmpFirst

	rx := qx + math.Sin(qy*2.1+tBase*1.3)*constant.WarpAmpSecond
	ry := qy + math.Cos(qx*1.7-tBase*1.1)*constant.WarpAmpSecond

	// Raw entropy enters as a structural phase perturbation so the
	// interference pattern never settles into visible periodicity.
	phaseNoise := entVal * constant.FieldPhaseNoise

	w1 := math.Sin(rx*1.43 + tBase + phaseNoise)
	w2 := math.Cos(ry*2.08 - tBase*1.2 - phaseNoise)
	w3 := math.Sin((rx-ry)*constant.Phi + tBase*1.5)

	return Sample{
		Field: w1*w2 + w3*0.5 + entVal*0.15,
		Pulse: math.Sin(rx*4.0 + ry*4.0 - tPulse),
		RX:    rx,
		RY:    ry,
		W1:    w1,
		W2:    w2,
		W3:    w3,
	}
}
