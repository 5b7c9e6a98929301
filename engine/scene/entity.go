package scene

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/cubescene/engine/math"
	"github.com/spaghettifunk/cubescene/engine/mesh"
)

// Tag marks entities that systems select on.
type Tag uint8

const (
	// TagPlayer entities are moved by the keyboard.
	TagPlayer Tag = 1 << iota
	// TagPov marks the camera the player looks through.
	TagPov
)

type Color struct {
	R, G, B, A float32
}

func NewColorFromArray(c [4]float32) Color {
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

type PointLight struct {
	Intensity      float32
	ShadowsEnabled bool
}

type Camera struct {
	FovY float32
	Near float32
	Far  float32
}

func NewCamera() *Camera {
	return &Camera{
		FovY: math.DegToRad(45.0),
		Near: 0.1,
		Far:  1000.0,
	}
}

// Entity is one object of the scene. Mesh, Light and Camera are optional.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Transform math.Transform
	Mesh      *mesh.Mesh
	Color     Color
	Tags      Tag
	Light     *PointLight
	Camera    *Camera
}

func (e *Entity) Has(tag Tag) bool {
	return e.Tags&tag == tag
}
