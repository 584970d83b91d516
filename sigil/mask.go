package sigil

import (
	"math"

	"github.com/lmtlss/scryer/constant"
)

// BitAt returns the bit at mask pixel coordinates, 0 outside bounds.
func (m *Mask) BitAt(mx, my int) int {
	if mx < 0 || my < 0 || mx >= m.Width || my >= m.Height {
		return 0
	}
	b := m.Bits[my*m.Stride+(mx>>3)]
	return int(b>>(7-(mx&7))) & 1
}

// IsEdge reports whether a set pixel has at least one empty neighbor.
func (m *Mask) IsEdge(mx, my int) bool {
	if m.BitAt(mx, my) == 0 {
		return false
	}
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			if m.BitAt(mx+ox, my+oy) == 0 {
				return true
			}
		}
	}
	return false
}

// IsCorner reports whether a set pixel sits on a convex feature: two or
// more orthogonal neighbors empty, or one orthogonal plus two diagonals.
func (m *Mask) IsCorner(mx, my int) bool {
	if m.BitAt(mx, my) == 0 {
		return false
	}
	orthEmpty := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if m.BitAt(mx+d[0], my+d[1]) == 0 {
			orthEmpty++
		}
	}
	diagEmpty := 0
	for _, d := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if m.BitAt(mx+d[0], my+d[1]) == 0 {
			diagEmpty++
		}
	}
	return orthEmpty >= 2 || (orthEmpty >= 1 && diagEmpty >= 2)
}

// pixelAt maps normalized [-1,1] coordinates to the nearest mask pixel.
func (m *Mask) pixelAt(u, v float64) (int, int) {
	fx := (u + 1.0) * 0.5 * float64(m.Width-1)
	fy := (v + 1.0) * 0.5 * float64(m.Height-1)
	mx := int(math.Round(fx))
	my := int(math.Round(fy))
	if mx < 0 {
		mx = 0
	} else if mx >= m.Width {
		mx = m.Width - 1
	}
	if my < 0 {
		my = 0
	} else if my >= m.Height {
		my = m.Height - 1
	}
	return mx, my
}

// Inside probes a square window around (u,v) for any set bit. The probe
// shrinks as scale grows so large renders stay crisp.
func (m *Mask) Inside(u, v, scale float64) bool {
	if u < -1.0 || u > 1.0 || v < -1.0 || v > 1.0 {
		return false
	}
	mx, my := m.pixelAt(u, v)
	probe := 3
	if scale >= 32.0 {
		probe = 1
	} else if scale >= 18.0 {
		probe = 2
	}
	for oy := -probe; oy <= probe; oy++ {
		for ox := -probe; ox <= probe; ox++ {
			if m.BitAt(mx+ox, my+oy) == 1 {
				return true
			}
		}
	}
	return false
}

// OnThread probes a square window around (u,v) for any edge or corner
// pixel. The wider low-scale probe preserves corners and crevices at
// terminal resolution.
func (m *Mask) OnThread(u, v, scale float64) bool {
	if u < -1.0 || u > 1.0 || v < -1.0 || v > 1.0 {
		return false
	}
	mx, my := m.pixelAt(u, v)
	probe := 3
	if scale >= 24.0 {
		probe = 1
	} else if scale >= 14.0 {
		probe = 2
	}
	for oy := -probe; oy <= probe; oy++ {
		for ox := -probe; ox <= probe; ox++ {
			if m.IsEdge(mx+ox, my+oy) || m.IsCorner(mx+ox, my+oy) {
				return true
			}
		}
	}
	return false
}

// PointOnSigil maps a grid cell into a sigil instance's mask space and
// tests its outline. Phase noise bends the coordinates so the threads
// read jagged under local entropy.
func PointOnSigil(x, y, cx, cy, scale, phaseNoise float64, m *Mask) bool {
	if m == nil {
		return false
	}
	u := (x - cx) / (scale * constant.SigilAspect)
	v := (y - cy) / scale
	u += phaseNoise * constant.SigilPhaseWarp
	v -= phaseNoise * constant.SigilPhaseWarp
	return m.OnThread(u, v, scale)
}
