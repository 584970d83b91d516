package sigil

import (
	"fmt"
	"math/rand"
	"testing"
)

// singlePixelMask builds the 8x8 raster with only (3,3) set.
func singlePixelMask(t *testing.T) *Mask {
	t.Helper()
	data := append([]byte("P4\n8 8\n"), []byte{0, 0, 0, 0x10, 0, 0, 0, 0}...)
	mask := DecodePBM(data)
	if mask == nil {
		t.Fatal("Expected single-pixel raster to decode")
	}
	return mask
}

func TestDecodeInvariants(t *testing.T) {
	cases := []struct {
		width, height int
	}{
		{1, 1}, {7, 3}, {8, 8}, {9, 2}, {64, 64}, {17, 5},
	}
	for _, tc := range cases {
		stride := (tc.width + 7) / 8
		data := []byte(fmt.Sprintf("P4\n%d %d\n", tc.width, tc.height))
		data = append(data, make([]byte, stride*tc.height)...)

		mask := DecodePBM(data)
		if mask == nil {
			t.Fatalf("Expected %dx%d raster to decode", tc.width, tc.height)
		}
		if mask.Stride != stride {
			t.Errorf("Expected stride %d for width %d, got %d", stride, tc.width, mask.Stride)
		}
		if len(mask.Bits) != mask.Stride*mask.Height {
			t.Errorf("Expected %d payload bytes, got %d", mask.Stride*mask.Height, len(mask.Bits))
		}
	}
}

func TestDecodeWrongMagic(t *testing.T) {
	data := append([]byte("P5\n8 8\n"), make([]byte, 8)...)
	if mask := DecodePBM(data); mask != nil {
		t.Errorf("Expected nil mask for P5 magic, got %dx%d", mask.Width, mask.Height)
	}
}

func TestDecodeTruncatedPayload(t *testing.T) {
	data := append([]byte("P4\n8 8\n"), make([]byte, 7)...)
	if DecodePBM(data) != nil {
		t.Error("Expected nil mask for truncated payload")
	}
}

func TestDecodeBadDimensions(t *testing.T) {
	for _, header := range []string{"P4\nx 8\n", "P4\n8\n", "P4\n", "P4\n8 y\n"} {
		data := append([]byte(header), make([]byte, 8)...)
		if DecodePBM(data) != nil {
			t.Errorf("Expected nil mask for header %q", header)
		}
	}
}

func TestDecodeSkipsComments(t *testing.T) {
	data := append([]byte("P4\n# a comment\n8 # mid comment\n8\n"), make([]byte, 8)...)
	mask := DecodePBM(data)
	if mask == nil {
		t.Fatal("Expected commented header to decode")
	}
	if mask.Width != 8 || mask.Height != 8 {
		t.Errorf("Expected 8x8, got %dx%d", mask.Width, mask.Height)
	}
}

func TestSinglePixelGeometry(t *testing.T) {
	mask := singlePixelMask(t)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := 0
			if x == 3 && y == 3 {
				want = 1
			}
			if got := mask.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if !mask.IsEdge(3, 3) {
		t.Error("Expected lone pixel to be an edge")
	}
	if !mask.IsCorner(3, 3) {
		t.Error("Expected lone pixel to be a corner")
	}
	if mask.IsEdge(2, 2) || mask.IsCorner(2, 2) {
		t.Error("Expected empty pixel to be neither edge nor corner")
	}
}

func TestBitAtOutOfBounds(t *testing.T) {
	mask := singlePixelMask(t)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-5, -5}, {100, 100}} {
		if got := mask.BitAt(p[0], p[1]); got != 0 {
			t.Errorf("BitAt(%d, %d) = %d, want 0 outside bounds", p[0], p[1], got)
		}
	}
}

func TestOnThreadOutsideNormalizedBounds(t *testing.T) {
	mask := singlePixelMask(t)

	outside := [][2]float64{{-1.5, 0}, {1.01, 0}, {0, -2}, {0, 1.2}, {3, 3}}
	for _, p := range outside {
		for _, scale := range []float64{5.0, 16.0, 40.0} {
			if mask.OnThread(p[0], p[1], scale) {
				t.Errorf("OnThread(%v, %v, %v) = true outside [-1,1]x[-1,1]", p[0], p[1], scale)
			}
			if mask.Inside(p[0], p[1], scale) {
				t.Errorf("Inside(%v, %v, %v) = true outside [-1,1]x[-1,1]", p[0], p[1], scale)
			}
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, dims := range [][2]int{{13, 9}, {32, 32}, {1, 1}, {8, 17}} {
		w, h := dims[0], dims[1]
		stride := (w + 7) / 8
		src := &Mask{Width: w, Height: h, Stride: stride, Bits: make([]byte, stride*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Intn(2) == 1 {
					src.Bits[y*stride+(x>>3)] |= 0x80 >> (x & 7)
				}
			}
		}

		decoded := DecodePBM(EncodePBM(src))
		if decoded == nil {
			t.Fatalf("Expected %dx%d round trip to decode", w, h)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if decoded.BitAt(x, y) != src.BitAt(x, y) {
					t.Fatalf("Round trip mismatch at (%d, %d) for %dx%d", x, y, w, h)
				}
			}
		}
	}
}
