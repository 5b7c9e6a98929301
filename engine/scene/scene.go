package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/math"
	"github.com/spaghettifunk/cubescene/engine/mesh"
)

const (
	GroundName = "ground"
	PlayerName = "player"
	LightName  = "light"
	CameraName = "camera"
)

type Scene struct {
	Entities []*Entity
	// Speed is how far players move per second.
	Speed float32
}

func New() *Scene {
	return &Scene{
		Entities: []*Entity{},
		Speed:    DefaultSpeed,
	}
}

// Spawn adds an entity with a fresh identifier and returns it.
func (s *Scene) Spawn(name string, t math.Transform) *Entity {
	e := &Entity{
		ID:        uuid.New(),
		Name:      name,
		Transform: t,
		Color:     Color{1, 1, 1, 1},
	}
	s.Entities = append(s.Entities, e)
	return e
}

// Query returns the entities carrying every bit of tags, in spawn order.
func (s *Scene) Query(tags Tag) []*Entity {
	out := []*Entity{}
	for _, e := range s.Entities {
		if e.Has(tags) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the first entity with the given name, or nil.
func (s *Scene) Find(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Pov returns the first camera tagged TagPov, or nil.
func (s *Scene) Pov() *Entity {
	for _, e := range s.Entities {
		if e.Camera != nil && e.Has(TagPov) {
			return e
		}
	}
	return nil
}

// Setup builds the scene described by cfg. The ground disc is created in
// the XY plane and baked flat onto XZ, so its entity transform stays identity.
func Setup(cfg *Config) (*Scene, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := New()
	s.Speed = cfg.Speed

	ground := s.Spawn(GroundName, *math.TransformCreate())
	ground.Mesh = mesh.NewCircle(cfg.Ground.Radius, cfg.Ground.Vertices).
		Bake(*math.TransformFromRotation(math.NewQuatFromRotationX(-math.K_HALF_PI)))
	ground.Color = NewColorFromArray(cfg.Ground.Color)

	playerMesh, err := loadPlayerMesh(cfg)
	if err != nil {
		core.LogError("failed to load the player mesh: %s", err)
		return nil, err
	}
	player := s.Spawn(PlayerName, *math.TransformFromTranslation(math.NewVec3FromArray(cfg.Player.Position)))
	player.Mesh = playerMesh
	player.Color = NewColorFromArray(cfg.Player.Color)
	player.Tags = TagPlayer

	light := s.Spawn(LightName, *math.TransformFromTranslation(math.NewVec3FromArray(cfg.Light.Position)))
	light.Light = &PointLight{}
	s.applyLight(cfg.Light)

	camera := s.Spawn(CameraName, math.TransformFromTranslation(math.NewVec3FromArray(cfg.Camera.Position)).
		LookingAt(math.NewVec3FromArray(cfg.Camera.LookAt), math.NewVec3FromArray(cfg.Camera.Up)))
	camera.Camera = NewCamera()
	camera.Tags = TagPov

	core.LogInfo("scene ready with %d entities", len(s.Entities))
	return s, nil
}

func loadPlayerMesh(cfg *Config) (*mesh.Mesh, error) {
	if cfg.Player.Mesh == "" {
		return mesh.NewCube(cfg.Player.Size), nil
	}
	meshes, err := mesh.LoadGLTF(cfg.ResolvePath(cfg.Player.Mesh))
	if err != nil {
		return nil, err
	}
	if len(meshes) > 1 {
		core.LogWarn("%s holds %d meshes, using %q", cfg.Player.Mesh, len(meshes), meshes[0].Name)
	}
	return meshes[0], nil
}

// ApplyConfig updates the settings that can change while running: the
// speed and the light.
func (s *Scene) ApplyConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	s.Speed = cfg.Speed
	s.applyLight(cfg.Light)
	core.LogInfo("scene config applied, speed %.2f", s.Speed)
	return nil
}

func (s *Scene) applyLight(cfg LightConfig) {
	for _, e := range s.Entities {
		if e.Light == nil {
			continue
		}
		e.Light.Intensity = cfg.Intensity
		e.Light.ShadowsEnabled = cfg.ShadowsEnabled
		e.Transform.SetTranslation(math.NewVec3FromArray(cfg.Position))
	}
}

// Update runs the per frame systems.
func (s *Scene) Update(input KeyboardState, wheel []float32, deltaTime float32) {
	ChangeSpeedSystem(s, wheel)
	KeyboardMoveSystem(s, input, deltaTime)
}
