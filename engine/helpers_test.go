package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lmtlss/scryer/sigil"
)

// emptyRegistry loads a registry from an empty directory: no index, no
// fallback raster, all mask features inert.
func emptyRegistry(t *testing.T) *sigil.Registry {
	t.Helper()
	dir := t.TempDir()
	return sigil.LoadRegistry(filepath.Join(dir, "absent.json"), []string{dir})
}

// solidRegistry loads a registry with a single all-foreground 8x8 mask
// under id 1, so every in-mask probe lands on a thread.
func solidRegistry(t *testing.T) *sigil.Registry {
	t.Helper()
	dir := t.TempDir()

	mask := &sigil.Mask{
		Width: 8, Height: 8, Stride: 1,
		Bits: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}
	if err := os.WriteFile(filepath.Join(dir, "solid.pbm"), sigil.EncodePBM(mask), 0o644); err != nil {
		t.Fatal(err)
	}
	index := filepath.Join(dir, "index.json")
	body := `{"sigils":[{"id":1,"entity":"Orobas","pbm":"solid.pbm","weight":1.0}]}`
	if err := os.WriteFile(index, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := sigil.LoadRegistry(index, []string{dir})
	if reg.Empty() {
		t.Fatal("Expected solid test registry to load")
	}
	return reg
}
