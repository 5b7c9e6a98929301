package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/cubescene/engine/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != 0.5 || cfg.Ground.Radius != 4 || cfg.Light.Intensity != 1500 || !cfg.Light.ShadowsEnabled {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "scene.toml", `
speed = 1.25

[runtime]
log_level = "debug"
max_frames = 120

[ground]
radius = 6.0
vertices = 32

[light]
intensity = 800.0
shadows_enabled = false
position = [1.0, 2.0, 3.0]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != 1.25 {
		t.Fatalf("speed %v", cfg.Speed)
	}
	if cfg.Ground.Radius != 6 || cfg.Ground.Vertices != 32 {
		t.Fatalf("ground %+v", cfg.Ground)
	}
	if cfg.Light.Intensity != 800 || cfg.Light.ShadowsEnabled || cfg.Light.Position != [3]float32{1, 2, 3} {
		t.Fatalf("light %+v", cfg.Light)
	}
	if cfg.Runtime.MaxFrames != 120 || cfg.LogLevel() != core.DebugLevel {
		t.Fatalf("runtime %+v", cfg.Runtime)
	}
	// untouched sections keep their defaults
	if cfg.Player.Position != [3]float32{0, 0.5, 0} || cfg.Window.Width != 1280 {
		t.Fatalf("defaults lost: %+v %+v", cfg.Player, cfg.Window)
	}
	if cfg.BaseDir != filepath.Dir(path) {
		t.Fatalf("base dir %q", cfg.BaseDir)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
speed: 2
player:
  size: 0.5
  position: [1, 0.25, -1]
camera:
  position: [0, 10, 10]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != 2 || cfg.Player.Size != 0.5 || cfg.Player.Position != [3]float32{1, 0.25, -1} {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Camera.Position != [3]float32{0, 10, 10} || cfg.Camera.Up != [3]float32{0, 1, 0} {
		t.Fatalf("camera %+v", cfg.Camera)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeFile(t, "scene.toml", "speed = 1.0\n")
	t.Setenv("CUBESCENE_SPEED", "3.5")
	t.Setenv("CUBESCENE_HEADLESS", "true")
	t.Setenv("CUBESCENE_MAX_FRAMES", "10")
	t.Setenv("CUBESCENE_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != 3.5 {
		t.Fatalf("speed %v", cfg.Speed)
	}
	if !cfg.Runtime.Headless || cfg.Runtime.MaxFrames != 10 || cfg.LogLevel() != core.WarnLevel {
		t.Fatalf("runtime %+v", cfg.Runtime)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"negative speed", "scene.toml", "speed = -1.0\n", ErrInvalidConfig},
		{"zero radius", "scene.toml", "[ground]\nradius = 0.0\n", ErrInvalidConfig},
		{"two vertices", "scene.yaml", "ground:\n  vertices: 2\n", ErrInvalidConfig},
		{"unknown level", "scene.toml", "[runtime]\nlog_level = \"loud\"\n", ErrInvalidConfig},
		{"camera on target", "scene.yaml", "camera:\n  position: [0, 0, 0]\n", ErrInvalidConfig},
		{"json", "scene.json", "{}", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeFile(t, "scene.toml", "speed = [")); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestResolvePath(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ResolvePath("cube.glb"); got != "cube.glb" {
		t.Fatalf("got %q", got)
	}
	cfg.BaseDir = "/srv/assets"
	if got := cfg.ResolvePath("models/cube.glb"); got != "/srv/assets/models/cube.glb" {
		t.Fatalf("got %q", got)
	}
	if got := cfg.ResolvePath("/abs/cube.glb"); got != "/abs/cube.glb" {
		t.Fatalf("got %q", got)
	}
}
