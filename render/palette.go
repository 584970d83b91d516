// Package render composes the per-cell layers into final characters and
// styles on a tcell screen: excitation tiers, toroidal pulse overrides,
// lightning, the base field, and the identity logo overlay.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the seven styles of the strictly-green-on-black scheme.
type Palette struct {
	Logo         tcell.Style
	Dim          tcell.Style
	Mid          tcell.Style
	Bright       tcell.Style
	Lightning    tcell.Style
	SigilCore    tcell.Style
	SigilSparkle tcell.Style
}

// Ramp anchors. All shades sit on the Luv blend between deep field green
// and sparkle green, centered around the logo green.
const (
	deepHex    = "#0F3D05"
	sparkleHex = "#9EFF2D"
	logoHex    = "#4CF200"
)

func styleOf(c colorful.Color) tcell.Style {
	r, g, b := c.Clamped().RGB255()
	return tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// NewPalette builds the green ramp. When the terminal cannot express RGB
// the whole scheme degrades to the plain terminal green.
func NewPalette(trueColor bool) Palette {
	if !trueColor {
		green := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
		return Palette{
			Logo:         green.Bold(true),
			Dim:          green,
			Mid:          green,
			Bright:       green,
			Lightning:    green.Bold(true),
			SigilCore:    green,
			SigilSparkle: green.Bold(true),
		}
	}

	deep, _ := colorful.Hex(deepHex)
	sparkle, _ := colorful.Hex(sparkleHex)
	logo, _ := colorful.Hex(logoHex)
	ramp := func(t float64) tcell.Style {
		return styleOf(deep.BlendLuv(sparkle, t))
	}

	return Palette{
		Logo:         styleOf(logo).Bold(true),
		Dim:          ramp(0.0),
		Mid:          ramp(0.3),
		Bright:       ramp(0.55),
		Lightning:    ramp(0.85),
		SigilCore:    ramp(0.7),
		SigilSparkle: ramp(1.0),
	}
}
