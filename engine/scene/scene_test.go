package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/cubescene/engine/math"
	"github.com/spaghettifunk/cubescene/engine/mesh"
)

const sceneTolerance float32 = 1e-4

func TestSetupDefaultScene(t *testing.T) {
	s, err := Setup(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entities) != 4 {
		t.Fatalf("got %d entities", len(s.Entities))
	}
	if s.Speed != DefaultSpeed {
		t.Fatalf("speed %v", s.Speed)
	}

	ground := s.Find(GroundName)
	if ground == nil || ground.Mesh == nil {
		t.Fatal("ground missing")
	}
	if !ground.Transform.IsIdentity() {
		t.Fatalf("ground transform %+v", ground.Transform)
	}
	for i, n := range ground.Mesh.Normals() {
		if !math.NewVec3FromArray(n).Compare(math.NewVec3Up(), sceneTolerance) {
			t.Fatalf("ground normal %d is %v", i, n)
		}
	}
	ext := ground.Mesh.ComputeAABB()
	if ext.Max.Y-ext.Min.Y > sceneTolerance || ext.Max.X < 4-sceneTolerance || ext.Max.Z < 4-sceneTolerance {
		t.Fatalf("ground is not a flat disc of radius 4: %+v", ext)
	}

	players := s.Query(TagPlayer)
	if len(players) != 1 || players[0].Name != PlayerName {
		t.Fatalf("players %v", players)
	}
	if players[0].Transform.Translation != math.NewVec3(0, 0.5, 0) {
		t.Fatalf("player at %v", players[0].Transform.Translation)
	}
	if players[0].Mesh.VertexCount() != 24 {
		t.Fatalf("player mesh has %d vertices", players[0].Mesh.VertexCount())
	}

	light := s.Find(LightName)
	if light.Light == nil || light.Light.Intensity != 1500 || !light.Light.ShadowsEnabled {
		t.Fatalf("light %+v", light.Light)
	}
	if light.Transform.Translation != math.NewVec3(4, 8, 4) {
		t.Fatalf("light at %v", light.Transform.Translation)
	}

	pov := s.Pov()
	if pov == nil || pov.Name != CameraName {
		t.Fatal("no point of view")
	}
	want := pov.Transform.Translation.MulScalar(-1).Normalize()
	if !pov.Transform.Forward().Compare(want, sceneTolerance) {
		t.Fatalf("camera looks at %v, want %v", pov.Transform.Forward(), want)
	}
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Size = 0
	if _, err := Setup(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestSetupLoadsPlayerMeshFromGLTF(t *testing.T) {
	dir := t.TempDir()
	plane := mesh.NewPlane(1, 0)
	if err := mesh.SaveGLTF(filepath.Join(dir, "player.glb"), plane); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.BaseDir = dir
	cfg.Player.Mesh = "player.glb"
	s, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := s.Find(PlayerName).Mesh
	if got.Name != plane.Name || got.VertexCount() != plane.VertexCount() {
		t.Fatalf("player mesh %q with %d vertices", got.Name, got.VertexCount())
	}

	cfg.Player.Mesh = "missing.glb"
	if _, err := Setup(cfg); err == nil {
		t.Fatal("expected an error for a missing mesh")
	}
}

func TestApplyConfig(t *testing.T) {
	s, err := Setup(nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Speed = 2
	cfg.Light.Intensity = 10
	cfg.Light.ShadowsEnabled = false
	cfg.Light.Position = [3]float32{0, 1, 0}
	if err := s.ApplyConfig(cfg); err != nil {
		t.Fatal(err)
	}

	light := s.Find(LightName)
	if s.Speed != 2 || light.Light.Intensity != 10 || light.Light.ShadowsEnabled {
		t.Fatalf("speed %v light %+v", s.Speed, light.Light)
	}
	if light.Transform.Translation != math.NewVec3(0, 1, 0) {
		t.Fatalf("light at %v", light.Transform.Translation)
	}

	cfg.Speed = -1
	if err := s.ApplyConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
	if s.Speed != 2 {
		t.Fatalf("invalid config changed the speed to %v", s.Speed)
	}
}

func TestQueryAndTags(t *testing.T) {
	s := New()
	a := s.Spawn("a", *math.TransformCreate())
	a.Tags = TagPlayer | TagPov
	b := s.Spawn("b", *math.TransformCreate())
	b.Tags = TagPlayer

	if got := s.Query(TagPlayer); len(got) != 2 {
		t.Fatalf("got %d players", len(got))
	}
	if got := s.Query(TagPlayer | TagPov); len(got) != 1 || got[0] != a {
		t.Fatalf("got %v", got)
	}
	if s.Pov() != nil {
		t.Fatal("entity without camera returned as point of view")
	}
	if a.ID == b.ID {
		t.Fatal("entities share an identifier")
	}
	if s.Find("c") != nil {
		t.Fatal("found a missing entity")
	}
}
