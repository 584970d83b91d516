package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if cfg != Default() {
		t.Errorf("Expected defaults for a missing file, got %+v", cfg)
	}
}

func TestLoadMalformedFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scryer.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(path)
	if cfg != Default() {
		t.Errorf("Expected defaults for a malformed file, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scryer.yaml")
	body := "fps: 30\naudio: false\nasset_root: /var/lib/scryer\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", cfg.FPS)
	}
	if cfg.Audio {
		t.Error("Expected audio disabled")
	}
	if cfg.AssetRoot != "/var/lib/scryer" {
		t.Errorf("Expected overridden asset root, got %q", cfg.AssetRoot)
	}
}

func TestLoadClampsFPS(t *testing.T) {
	for _, tc := range []struct {
		body string
		want int
	}{
		{"fps: 0\n", 1},
		{"fps: -5\n", 1},
		{"fps: 240\n", 60},
	} {
		path := filepath.Join(t.TempDir(), "scryer.yaml")
		if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
			t.Fatal(err)
		}
		if cfg := Load(path); cfg.FPS != tc.want {
			t.Errorf("Expected fps clamped to %d for %q, got %d", tc.want, tc.body, cfg.FPS)
		}
	}
}

func TestLoadEmptyAssetRootRestored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scryer.yaml")
	if err := os.WriteFile(path, []byte("asset_root: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg := Load(path); cfg.AssetRoot != Default().AssetRoot {
		t.Errorf("Expected default asset root restored, got %q", cfg.AssetRoot)
	}
}
