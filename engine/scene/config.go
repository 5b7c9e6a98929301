package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/math"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig     = errors.New("invalid scene config")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	PosX   uint32 `toml:"pos_x" yaml:"pos_x"`
	PosY   uint32 `toml:"pos_y" yaml:"pos_y"`
	Width  uint32 `toml:"width" yaml:"width"`
	Height uint32 `toml:"height" yaml:"height"`
}

// RuntimeConfig holds the process settings that can also come from the
// environment.
type RuntimeConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"CUBESCENE_LOG_LEVEL"`
	Headless  bool   `toml:"headless" yaml:"headless" env:"CUBESCENE_HEADLESS"`
	MaxFrames uint64 `toml:"max_frames" yaml:"max_frames" env:"CUBESCENE_MAX_FRAMES"`
}

type GroundConfig struct {
	Radius   float32    `toml:"radius" yaml:"radius"`
	Vertices int        `toml:"vertices" yaml:"vertices"`
	Color    [4]float32 `toml:"color" yaml:"color"`
}

type PlayerConfig struct {
	Size     float32    `toml:"size" yaml:"size"`
	Position [3]float32 `toml:"position" yaml:"position"`
	Color    [4]float32 `toml:"color" yaml:"color"`
	// Mesh optionally points to a glTF file whose first mesh replaces the cube.
	Mesh string `toml:"mesh" yaml:"mesh"`
}

type LightConfig struct {
	Intensity      float32    `toml:"intensity" yaml:"intensity"`
	ShadowsEnabled bool       `toml:"shadows_enabled" yaml:"shadows_enabled"`
	Position       [3]float32 `toml:"position" yaml:"position"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position" yaml:"position"`
	LookAt   [3]float32 `toml:"look_at" yaml:"look_at"`
	Up       [3]float32 `toml:"up" yaml:"up"`
}

type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Runtime RuntimeConfig `toml:"runtime" yaml:"runtime"`
	Speed   float32       `toml:"speed" yaml:"speed" env:"CUBESCENE_SPEED"`
	Ground  GroundConfig  `toml:"ground" yaml:"ground"`
	Player  PlayerConfig  `toml:"player" yaml:"player"`
	Light   LightConfig   `toml:"light" yaml:"light"`
	Camera  CameraConfig  `toml:"camera" yaml:"camera"`

	// BaseDir resolves relative asset paths. LoadConfig sets it to the
	// directory of the config file.
	BaseDir string `toml:"-" yaml:"-"`
}

// DefaultConfig describes the demo scene: a white disc, a blue cube resting
// on it, a point light above and a camera looking at the origin.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Cube Scene",
			PosX:   100,
			PosY:   100,
			Width:  1280,
			Height: 720,
		},
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
		Speed: DefaultSpeed,
		Ground: GroundConfig{
			Radius: 4.0,
			Color:  [4]float32{1, 1, 1, 1},
		},
		Player: PlayerConfig{
			Size:     1.0,
			Position: [3]float32{0, 0.5, 0},
			Color:    [4]float32{124.0 / 255.0, 144.0 / 255.0, 1, 1},
		},
		Light: LightConfig{
			Intensity:      1500.0,
			ShadowsEnabled: true,
			Position:       [3]float32{4, 8, 4},
		},
		Camera: CameraConfig{
			Position: [3]float32{-2.5, 4.5, 9},
			LookAt:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
		},
	}
}

// LoadConfig reads a TOML or YAML scene file on top of the defaults, then
// applies the CUBESCENE_* environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	cfg.BaseDir = filepath.Dir(path)

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	core.LogDebug("scene config loaded from %s", path)
	return cfg, nil
}

// ApplyEnv overwrites the fields whose environment variable is set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	invalid := func(field, format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
	}

	if c.Window.Width == 0 || c.Window.Height == 0 {
		return invalid("window", "size %dx%d must not be empty", c.Window.Width, c.Window.Height)
	}
	if c.Runtime.LogLevel != "" {
		if _, err := core.ParseLogLevel(c.Runtime.LogLevel); err != nil {
			return invalid("runtime.log_level", "%q is unknown", c.Runtime.LogLevel)
		}
	}
	if c.Speed < 0 {
		return invalid("speed", "%g must not be negative", c.Speed)
	}
	if c.Ground.Radius <= 0 {
		return invalid("ground.radius", "%g must be positive", c.Ground.Radius)
	}
	if c.Ground.Vertices != 0 && c.Ground.Vertices < 3 {
		return invalid("ground.vertices", "%d must be 0 or at least 3", c.Ground.Vertices)
	}
	if c.Player.Size <= 0 {
		return invalid("player.size", "%g must be positive", c.Player.Size)
	}
	if c.Light.Intensity < 0 {
		return invalid("light.intensity", "%g must not be negative", c.Light.Intensity)
	}

	camera := math.NewVec3FromArray(c.Camera.Position)
	target := math.NewVec3FromArray(c.Camera.LookAt)
	if camera.Compare(target, math.K_FLOAT_EPSILON) {
		return invalid("camera.look_at", "must differ from camera.position")
	}
	if math.NewVec3FromArray(c.Camera.Up).LengthSquared() == 0 {
		return invalid("camera.up", "must not be zero")
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() core.LogLevel {
	level, err := core.ParseLogLevel(c.Runtime.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}

// ResolvePath makes p relative to the config file unless it is absolute.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
