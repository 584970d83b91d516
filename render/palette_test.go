package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPaletteTrueColorRamp(t *testing.T) {
	p := NewPalette(true)

	// The ramp is strictly ordered; distinct anchors must produce
	// distinct styles.
	if p.Dim == p.Mid || p.Mid == p.Bright || p.Bright == p.SigilSparkle {
		t.Error("Expected distinct styles along the green ramp")
	}
	if p.Dim == p.SigilCore || p.Lightning == p.SigilSparkle {
		t.Error("Expected distinct accent styles")
	}

	for name, s := range map[string]tcell.Style{
		"logo": p.Logo, "dim": p.Dim, "mid": p.Mid, "bright": p.Bright,
		"lightning": p.Lightning, "core": p.SigilCore, "sparkle": p.SigilSparkle,
	} {
		_, bg, _ := s.Decompose()
		if bg != tcell.ColorBlack {
			t.Errorf("Expected black background for %s style", name)
		}
	}
}

func TestPaletteDegradesToPlainGreen(t *testing.T) {
	p := NewPalette(false)

	if p.Dim != p.Mid || p.Mid != p.Bright {
		t.Error("Expected a single shade without RGB support")
	}
	fg, _, _ := p.Dim.Decompose()
	if fg != tcell.ColorGreen {
		t.Errorf("Expected the plain terminal green, got %v", fg)
	}
	_, _, attrs := p.Logo.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected the logo to stay bold in the degraded scheme")
	}
}
