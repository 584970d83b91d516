// Package glyph builds the curated multi-script character inventory used
// for text manifestation. The catalog is built once at startup and is
// immutable afterwards; every lookup is a pure function of its inputs.
package glyph

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// StrokeChars are the fine-grain thread glyphs that keep sigils airy
// instead of blocky.
const StrokeChars = "|/\\!;:.'`-~"

// Fallback fills any family whose entire range is filtered out.
const Fallback = '*'

// symbolAllowlist keeps the two monochrome-safe planetary symbols inside
// the otherwise emoji-prone 2600-27BF band.
var symbolAllowlist = map[rune]bool{'☿': true, '⚸': true}

// emojiBlockRanges are code blocks that trigger color emoji fonts.
var emojiBlockRanges = [...][2]rune{
	{0x1F1E6, 0x1F1FF}, // Regional indicators / flags
	{0x1F300, 0x1F6FF}, // Misc emoji + transport
	{0x1F900, 0x1FAFF}, // Supplemental emoji + symbols/pictographs
	{0xE0020, 0xE007F},
}

type familyRanges struct {
	name   string
	ranges [][2]rune
}

// familyTable preserves the catalog's family order; GlyphFor depends on it.
var familyTable = []familyRanges{
	{"latin", [][2]rune{{0x0021, 0x007E}, {0x00A1, 0x00FF}, {0x0100, 0x024F}}},
	{"greek", [][2]rune{{0x0370, 0x03FF}, {0x1F00, 0x1FFF}}},
	{"cyrillic", [][2]rune{{0x0400, 0x052F}, {0x2DE0, 0x2DFF}}},
	{"hebrew", [][2]rune{{0x0590, 0x05FF}}},
	{"arabic", [][2]rune{{0x0600, 0x06FF}, {0x0750, 0x077F}, {0x08A0, 0x08FF}}},
	{"indic", [][2]rune{
		{0x0900, 0x097F}, {0x0980, 0x09FF}, {0x0A00, 0x0A7F}, {0x0A80, 0x0AFF},
		{0x0B00, 0x0B7F}, {0x0B80, 0x0BFF}, {0x0C00, 0x0C7F}, {0x0C80, 0x0CFF},
		{0x0D00, 0x0D7F}, {0x0D80, 0x0DFF},
	}},
	{"southeast_asian", [][2]rune{{0x0E00, 0x0E7F}, {0x0E80, 0x0EFF}, {0x1000, 0x109F}, {0x1780, 0x17FF}}},
	{"east_asian", [][2]rune{{0x3040, 0x30FF}, {0x3400, 0x4DBF}, {0x4E00, 0x9FFF}, {0xAC00, 0xD7AF}}},
	{"african", [][2]rune{{0x1200, 0x137F}, {0x2D80, 0x2DDF}, {0x2D30, 0x2D7F}, {0xA500, 0xA63F}, {0xA4D0, 0xA4FF}}},
	{"nordic", [][2]rune{{0x1680, 0x169F}, {0x16A0, 0x16FF}}},
	{"math", [][2]rune{{0x2200, 0x22FF}, {0x27C0, 0x27EF}, {0x2980, 0x29FF}, {0x2A00, 0x2AFF}}},
	{"geometric", [][2]rune{{0x2500, 0x257F}, {0x2580, 0x259F}, {0x25A0, 0x25FF}}},
	{"alchemical", [][2]rune{{0x1F700, 0x1F77F}}},
	{"deity", nil}, // curated below, not range-derived
	{"occult", [][2]rune{{0x2100, 0x214F}}},
}

// deityGlyphs is the curated monochrome-safe core symbol set.
var deityGlyphs = []rune("☿⚸")

// Catalog is the filtered, deduplicated glyph inventory keyed by family.
type Catalog struct {
	names    []string
	families [][]rune
	strokes  []rune
}

// isEmojiLike reports whether a code point belongs to a recognized
// emoji-rendering block.
func isEmojiLike(r rune) bool {
	for _, b := range emojiBlockRanges {
		if r >= b[0] && r <= b[1] {
			return true
		}
	}

	// Selector + tag controls used for emoji presentation.
	if r == 0xFE0F || r == 0x200D {
		return true
	}

	// Emoji-prone symbol bands, with explicit safe symbol allowlist.
	if r >= 0x2600 && r <= 0x27BF {
		return !symbolAllowlist[r]
	}

	// Misc symbols and dingbat-adjacent bands can trigger color emoji fonts.
	if r >= 0x2B00 && r <= 0x2BFF {
		return true
	}

	return false
}

// Safe reports whether a rune renders as exactly one monochrome terminal
// cell: printable, non-space, non-combining, single-width, not emoji-like.
func Safe(r rune) bool {
	if isEmojiLike(r) {
		return false
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return false
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc) {
		return false
	}
	return runewidth.RuneWidth(r) == 1
}

// BuildCatalog constructs the catalog. Deterministic, no external state.
func BuildCatalog() *Catalog {
	c := &Catalog{
		names:    make([]string, 0, len(familyTable)),
		families: make([][]rune, 0, len(familyTable)),
		strokes:  []rune(StrokeChars),
	}

	for _, fam := range familyTable {
		var pool []rune
		seen := make(map[rune]bool)
		add := func(r rune) {
			if !seen[r] && Safe(r) {
				seen[r] = true
				pool = append(pool, r)
			}
		}
		for _, rr := range fam.ranges {
			for r := rr[0]; r <= rr[1]; r++ {
				add(r)
			}
		}
		if fam.name == "deity" {
			for _, r := range deityGlyphs {
				add(r)
			}
		}
		if len(pool) == 0 {
			pool = []rune{Fallback}
		}
		c.names = append(c.names, fam.name)
		c.families = append(c.families, pool)
	}

	return c
}

// GlyphFor picks a family uniformly across all families, then a glyph
// inside that family, via two decorrelated hashes. Pure: identical inputs
// always yield the identical glyph.
func (c *Catalog) GlyphFor(b byte, f float64) rune {
	mix := uint32(b)*2654435761 ^ uint32(f*4294967295.0)
	pool := c.families[mix%uint32(len(c.families))]
	mix2 := (mix >> 13) ^ (mix << 7) ^ (uint32(b) * 7919)
	return pool[mix2%uint32(len(pool))]
}

// StrokeGlyphFor picks a thin stroke character for lightweight ignition
// marks, with the same two-stage hash pattern.
func (c *Catalog) StrokeGlyphFor(b byte, f float64) rune {
	mix := uint32(b)*1315423911 ^ uint32(f*1000000.0)
	return c.strokes[mix%uint32(len(c.strokes))]
}

// FamilyNames returns the catalog's family order.
func (c *Catalog) FamilyNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Family returns the glyph pool for a named family, nil if unknown.
func (c *Catalog) Family(name string) []rune {
	for i, n := range c.names {
		if n == name {
			out := make([]rune, len(c.families[i]))
			copy(out, c.families[i])
			return out
		}
	}
	return nil
}
