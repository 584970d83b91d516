package glyph

import "testing"

func TestBuildCatalogFamiliesNonEmpty(t *testing.T) {
	c := BuildCatalog()

	names := c.FamilyNames()
	if len(names) != 15 {
		t.Fatalf("Expected 15 families, got %d", len(names))
	}
	for _, name := range names {
		pool := c.Family(name)
		if len(pool) == 0 {
			t.Errorf("Expected family %q to be non-empty", name)
		}
	}
}

func TestFamilyMembersAreSafe(t *testing.T) {
	c := BuildCatalog()

	for _, name := range c.FamilyNames() {
		for _, r := range c.Family(name) {
			if r == Fallback {
				continue
			}
			if !Safe(r) {
				t.Errorf("Family %q contains unsafe rune %U", name, r)
			}
		}
	}
}

func TestFamiliesDeduplicated(t *testing.T) {
	c := BuildCatalog()

	for _, name := range c.FamilyNames() {
		seen := make(map[rune]bool)
		for _, r := range c.Family(name) {
			if seen[r] {
				t.Errorf("Family %q contains duplicate rune %U", name, r)
			}
			seen[r] = true
		}
	}
}

func TestGlyphForIsPure(t *testing.T) {
	c := BuildCatalog()

	cases := []struct {
		b byte
		f float64
	}{
		{0, 0.0},
		{17, 0.25},
		{128, 0.5},
		{200, 0.99},
		{255, 1.0},
	}
	for _, tc := range cases {
		first := c.GlyphFor(tc.b, tc.f)
		for i := 0; i < 10; i++ {
			if got := c.GlyphFor(tc.b, tc.f); got != first {
				t.Errorf("GlyphFor(%d, %v) not pure: got %q then %q", tc.b, tc.f, first, got)
			}
		}
	}
}

func TestGlyphForMembership(t *testing.T) {
	c := BuildCatalog()

	union := make(map[rune]bool)
	for _, name := range c.FamilyNames() {
		for _, r := range c.Family(name) {
			union[r] = true
		}
	}

	for b := 0; b < 256; b += 3 {
		for _, f := range []float64{0.0, 0.1, 0.33, 0.7, 0.999} {
			r := c.GlyphFor(byte(b), f)
			if !union[r] {
				t.Fatalf("GlyphFor(%d, %v) = %U, not in any family", b, f, r)
			}
		}
	}
}

func TestStrokeGlyphFor(t *testing.T) {
	c := BuildCatalog()

	strokes := make(map[rune]bool)
	for _, r := range StrokeChars {
		strokes[r] = true
	}

	for b := 0; b < 256; b += 7 {
		r := c.StrokeGlyphFor(byte(b), 0.42)
		if !strokes[r] {
			t.Errorf("StrokeGlyphFor(%d, 0.42) = %q, not a stroke char", b, r)
		}
		if again := c.StrokeGlyphFor(byte(b), 0.42); again != r {
			t.Errorf("StrokeGlyphFor(%d, 0.42) not pure: got %q then %q", b, r, again)
		}
	}
}

func TestSafeFilters(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'ᚠ', true},     // runic, single width
		{'☿', true},     // allowlisted planetary symbol
		{'⚸', true},     // allowlisted planetary symbol
		{' ', false},    // whitespace
		{'\t', false},   // whitespace
		{0x0301, false}, // combining acute
		{'中', false},    // double width
		{0x1F600, false}, // emoji block
		{0x200D, false}, // zero-width joiner
		{0x2B50, false}, // dingbat-adjacent band
		{'☀', false},    // 2600 band, not allowlisted
	}
	for _, tc := range cases {
		if got := Safe(tc.r); got != tc.want {
			t.Errorf("Safe(%U) = %v, want %v", tc.r, got, tc.want)
		}
	}
}
