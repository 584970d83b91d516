package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lmtlss/scryer/constant"
	"github.com/lmtlss/scryer/engine"
	"github.com/lmtlss/scryer/entropy"
)

// Logo is the persistent identity block, composited last over the field.
var Logo = []string{
	`  _           _   _                           _ `,
	` | |         | | | |                         | |`,
	` | |_ __ ___ | |_| |___ ___   ___  ___  _   _| |`,
	` | | '_ ` + "`" + ` _ \| __| / __/ __| / __|/ _ \| | | | |`,
	` | | | | | | | |_| \__ \__ \ \__ \ (_) | |_| | |`,
	` |_|_| |_| |_|\__|_|___/___/ |___/\___/ \__,_|_|`,
}

func logoSize() (int, int) {
	w := 0
	for _, line := range Logo {
		if len(line) > w {
			w = len(line)
		}
	}
	return w, len(Logo)
}

// renderLogo draws the logo centered with a whole-block glitch jitter.
// Each cell independently re-checks the excitation grid and an extreme
// entropy+coherence condition: either momentarily possesses the identity
// glyph into a catalog glyph.
func (c *Compositor) renderLogo(screen tcell.Screen, st *engine.State, pool []byte, width, height int, roll *entropy.Roller) {
	glitchX, glitchY := 0, 0
	if roll.Float64() < constant.GlitchChance {
		glitchX = roll.RangeInt(-2, 2)
		glitchY = roll.RangeInt(-1, 1)
	}

	logoWidth, logoHeight := logoSize()
	startY := (height-logoHeight)/2 + glitchY
	startX := (width-logoWidth)/2 + glitchX
	coherence := st.Coherence()

	for i, line := range Logo {
		for j, ch := range line {
			if ch == ' ' {
				continue
			}
			y := startY + i
			x := startX + j
			if y < 0 || y >= height-1 || x < 0 || x >= width-1 {
				continue
			}

			entByte := pool[y*width+x]
			entVal := float64(entByte) / 255.0
			excite := st.ExciteAt(x, y)

			if excite > constant.LogoPossessExcite ||
				(entVal > constant.LogoPossessEntropy && coherence > constant.LogoPossessCoheren) {
				style := c.Palette.Bright.Bold(true)
				if excite > constant.LogoSparkleExcite {
					style = c.Palette.SigilSparkle.Bold(true)
				}
				screen.SetContent(x, y, c.Catalog.GlyphFor(entByte, entVal), nil, style)
			} else {
				screen.SetContent(x, y, ch, nil, c.Palette.Logo)
			}
		}
	}
}
