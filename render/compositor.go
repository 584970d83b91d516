package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/engine"
	"github.com/lmtlss/scryer/entropy"
	"github.com/lmtlss/scryer/field"
	"github.com/lmtlss/scryer/glyph"
	"github.com/lmtlss/scryer/sigil"
)

// Compositor resolves the final character and style for every cell under
// the fixed layer precedence: excitation override, toroidal pulse
// override, lightning, base field, spark seeding, then the logo overlay.
type Compositor struct {
	Catalog  *glyph.Catalog
	Registry *sigil.Registry
	Palette  Palette
}

// NewCompositor wires the immutable startup configuration.
func NewCompositor(catalog *glyph.Catalog, registry *sigil.Registry, palette Palette) *Compositor {
	return &Compositor{Catalog: catalog, Registry: registry, Palette: palette}
}

// RenderFrame draws one settled simulation frame onto the screen. pool
// must be the same entropy buffer the engine stepped with.
func (c *Compositor) RenderFrame(screen tcell.Screen, st *engine.State, pool []byte, t float64, width, height int, roll *entropy.Roller) {
	tPulse := field.TimePulse(t)

	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			c.renderCell(screen, st, pool, t, tPulse, x, y, width, height, roll)
		}
	}

	c.renderLogo(screen, st, pool, width, height, roll)
}

// mod10000 is a floor modulo: the hash stays in [0, 10000) even when the
// time-shifted offsets go negative.
func mod10000(v int) int {
	v %= 10000
	if v < 0 {
		v += 10000
	}
	return v
}

// renderGate is the deterministic per-cell hash used to thin the lower
// excitation tiers so their density stays organic.
func renderGate(entByte byte, x, y int) float64 {
	h := (uint32(entByte)*1103515245 + uint32(x)*131 + uint32(y)*197) & 0xFF
	return float64(h) / 255.0
}

func (c *Compositor) renderCell(screen tcell.Screen, st *engine.State, pool []byte, t, tPulse float64, x, y, width, height int, roll *entropy.Roller) {
	entByte := pool[y*width+x]
	entVal := float64(entByte) / 255.0

	smp := field.At(x, y, t, entVal)
	fieldVal := smp.Field
	pulse := smp.Pulse
	rx, ry := smp.RX, smp.RY
	emergence := st.Emergence

	// Excitation override: entirely replaces the base field for the cell.
	if excite := st.ExciteAt(x, y); excite > 0.0 {
		fragment := math.Min(1.0, math.Abs(smp.W1-smp.W2)*constant.FragmentW12+math.Abs(smp.W2-smp.W3)*constant.FragmentW23)
		gate := renderGate(entByte, x, y)
		sigByte := pool[(y*width+x+int(t*constant.ExciteByteDrift))%len(pool)]
		sigVal := float64(sigByte) / 255.0

		switch {
		case excite > constant.ExciteSparkleTier ||
			(excite > constant.ExciteSparkleAlt && fragment > constant.ExciteFragmentAlt):
			screen.SetContent(x, y, c.Catalog.GlyphFor(sigByte, sigVal), nil, c.Palette.SigilSparkle.Bold(true))
		case excite > constant.ExciteCoreTier || fragment > constant.ExciteCoreFragment:
			if gate > constant.ExciteCoreGateSkip {
				return
			}
			style := c.Palette.SigilCore
			if entVal > 0.74 {
				style = style.Bold(true)
			}
			screen.SetContent(x, y, c.Catalog.GlyphFor(sigByte^entByte, (sigVal+entVal)*0.5), nil, style)
		default:
			if gate > constant.ExciteCloudGateSkip {
				return
			}
			screen.SetContent(x, y, c.Catalog.GlyphFor(sigByte^(entByte>>1), sigVal*0.6+entVal*0.4), nil, c.Palette.Dim.Dim(true))
		}
		return
	}

	// Toroidal pulse override: forces the cell into the plasma branch and
	// shears the warped coordinates rotationally around the epicenter.
	maxRadius := float64(width) * constant.PulseMaxRadiusFactor
	for _, p := range st.Pulses {
		age := t - p.SpawnTime
		intensity := math.Exp(-age*constant.PulseFade) * math.Sin(age*math.Pi/constant.PulseDuration)

		dx := float64(x - p.CX)
		dy := float64(y-p.CY) * constant.PulseAspectY
		r := math.Sqrt(dx*dx + dy*dy)
		if r >= maxRadius {
			continue
		}

		// Dense ring with a hollow center.
		ringDist := math.Abs(r - maxRadius*constant.PulseRingFactor)
		toroidField := math.Cos(ringDist*constant.PulseRingFrequency-tPulse*2.0) * intensity

		if toroidField > constant.PulseFieldThreshold && entVal > constant.PulseEntropyFloor {
			fieldVal = 0.0
			pulse = 1.0
			emergence = 1.0
			rx += dy * constant.PulseShear * intensity
			ry -= dx * constant.PulseShear * intensity
		}
	}

	// Lightning: high-frequency spatial resonance on the warped
	// coordinates, excited where the possession pulse runs hot.
	lightning := false
	lightningIntensity := 0.0
	if pulse > constant.LightningPulseFloor && emergence > constant.EmergenceThreshold {
		arc := math.Sin(rx*constant.LightningArcFrequency+tPulse*2.0) +
			math.Cos(ry*constant.LightningArcFrequency-tPulse*2.0)
		if math.Abs(arc) > constant.LightningArcThreshold && entVal > constant.LightningEntropyFloor {
			lightning = true
			lightningIntensity = entVal
		}
	}

	ch := ' '
	style := c.Palette.Dim

	if lightning {
		ch = c.Catalog.GlyphFor(entByte, entVal)
		switch {
		case lightningIntensity > constant.LightningBrightTier:
			style = c.Palette.Lightning.Bold(true)
		case lightningIntensity > constant.LightningMidTier:
			style = c.Palette.Bright.Bold(true)
		default:
			style = c.Palette.Mid
		}
	} else if emergence > constant.EmergenceThreshold {
		absField := math.Abs(fieldVal)

		if absField < constant.MyceliumBand {
			// Mycelial structure emerges at the zero crossings.
			ch = c.Catalog.GlyphFor(entByte, entVal)
			if pulse > constant.MyceliumPulseFloor && entVal > constant.MyceliumEntFloor {
				style = c.Palette.Bright.Bold(true)
			} else if emergence > 0.5 {
				style = c.Palette.Mid
			} else {
				style = c.Palette.Dim
			}
		} else if fieldVal > constant.StarFieldFloor {
			// Parallax star layers via coordinate hashing; spatial hashes
			// rather than noise keep the layers from forming blobs.
			ox1 := int(float64(x) + t*25.0)
			oy1 := int(float64(y) + t*15.0)
			hash1 := float64(mod10000(ox1*374761393+oy1*668265263)) / 10000.0

			ox2 := int(float64(x) + t*10.0)
			oy2 := int(float64(y) - t*5.0)
			hash2 := float64(mod10000(ox2*324761393+oy2*868265263)) / 10000.0

			switch {
			case hash1 > constant.StarCloseCutoff:
				ch = c.Catalog.GlyphFor(entByte, entVal)
				style = c.Palette.Mid
			case hash2 > constant.StarMidCutoff:
				ch = c.Catalog.GlyphFor(entByte, entVal)
				style = c.Palette.Dim
			case entVal > constant.StarEntropyCutoff:
				ch = c.Catalog.GlyphFor(entByte, entVal)
				style = c.Palette.Dim
			}
		}
	}

	// Spark seeding: perfect conditions on a sigil thread feed the next
	// frame's excitation layer.
	if pulse > constant.SeedPulseFloor && entVal > constant.SeedEntropyFloor && emergence > constant.EmergenceThreshold {
		phaseNoise := entVal * constant.FieldPhaseNoise
		for _, sg := range st.Sigils {
			if sigil.PointOnSigil(float64(x), float64(y), sg.CX, sg.CY, sg.Scale, phaseNoise, sg.MaskFor(c.Registry)) {
				st.Inject(x, y, 1.0, width, height, roll, st.Sparks, false)
				break
			}
		}
	}

	if ch != ' ' {
		screen.SetContent(x, y, ch, nil, style)
	}
}
