package testbed

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/scene"
)

// LoadConfig reads the scene file. When fallback is set a missing file gives
// the built in scene with environment overrides instead of an error.
func LoadConfig(path string, fallback bool) (*scene.Config, error) {
	cfg, err := scene.LoadConfig(path)
	if err == nil {
		cfg.BaseDir, _ = filepath.Abs(cfg.BaseDir)
		return cfg, nil
	}
	if !fallback || !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	core.LogWarn("%s not found, using the built in scene", path)
	cfg = scene.DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
