package mesh

import (
	"fmt"
	stdmath "math"

	"github.com/spaghettifunk/cubescene/engine/core"
	"golang.org/x/image/math/f32"
)

// DefaultCircleVertices is the vertex count used when NewCircle gets zero.
const DefaultCircleVertices = 64

// NewCircle builds a flat disc of the given radius in the XY plane, facing
// +Z, as a fan of vertices-2 triangles around the rim. The first vertex sits
// at the top and the rest follow clockwise.
func NewCircle(radius float32, vertices int) *Mesh {
	if radius <= 0 {
		core.LogWarn("Circle radius must be positive. Defaulting to one.")
		radius = 1.0
	}
	if vertices == 0 {
		vertices = DefaultCircleVertices
	}
	if vertices < 3 {
		core.LogWarn("Circle needs at least 3 vertices. Defaulting to %d.", DefaultCircleVertices)
		vertices = DefaultCircleVertices
	}

	positions := make(Float32x3, vertices)
	normals := make(Float32x3, vertices)
	uvs := make(Float32x2, vertices)

	step := 2.0 * stdmath.Pi / float64(vertices)
	for i := 0; i < vertices; i++ {
		theta := stdmath.Pi/2 - float64(i)*step
		sin, cos := stdmath.Sincos(theta)
		positions[i] = f32.Vec3{float32(cos) * radius, float32(sin) * radius, 0}
		normals[i] = f32.Vec3{0, 0, 1}
		uvs[i] = f32.Vec2{float32(0.5 * (cos + 1.0)), float32(1.0 - 0.5*(sin+1.0))}
	}

	indices := make([]uint32, 0, (vertices-2)*3)
	for i := uint32(1); i < uint32(vertices-1); i++ {
		indices = append(indices, 0, i+1, i)
	}

	m := New(fmt.Sprintf("circle_r%g", radius))
	m.Indices = indices
	m.attributes[AttributePosition] = positions
	m.attributes[AttributeNormal] = normals
	m.attributes[AttributeUV0] = uvs
	return m
}

// cube faces: normal and the four corners as signs of the half extents,
// ordered min/min, max/max, min/max, max/min in face UV space.
var cubeFaces = [6]struct {
	normal  f32.Vec3
	corners [4]f32.Vec3
}{
	// front
	{f32.Vec3{0, 0, 1}, [4]f32.Vec3{{-1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {1, -1, 1}}},
	// back
	{f32.Vec3{0, 0, -1}, [4]f32.Vec3{{1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {-1, -1, -1}}},
	// left
	{f32.Vec3{-1, 0, 0}, [4]f32.Vec3{{-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}}},
	// right
	{f32.Vec3{1, 0, 0}, [4]f32.Vec3{{1, -1, 1}, {1, 1, -1}, {1, 1, 1}, {1, -1, -1}}},
	// bottom
	{f32.Vec3{0, -1, 0}, [4]f32.Vec3{{1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}}},
	// top
	{f32.Vec3{0, 1, 0}, [4]f32.Vec3{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {1, 1, 1}}},
}

var cubeFaceUVs = [4]f32.Vec2{{0, 0}, {1, 1}, {0, 1}, {1, 0}}

// NewCube builds an axis aligned cube centred on the origin with 4 vertices
// per face, so every face keeps its own normal, UVs and tangent.
func NewCube(size float32) *Mesh {
	if size <= 0 {
		core.LogWarn("Cube size must be positive. Defaulting to one.")
		size = 1.0
	}
	half := size * 0.5

	positions := make(Float32x3, 0, 24)
	normals := make(Float32x3, 0, 24)
	uvs := make(Float32x2, 0, 24)
	indices := make([]uint32, 0, 36)

	for i, face := range cubeFaces {
		for c, corner := range face.corners {
			positions = append(positions, f32.Vec3{corner[0] * half, corner[1] * half, corner[2] * half})
			normals = append(normals, face.normal)
			uvs = append(uvs, cubeFaceUVs[c])
		}
		v := uint32(i * 4)
		indices = append(indices, v+0, v+1, v+2, v+0, v+3, v+1)
	}

	m := New(fmt.Sprintf("cube_%g", size))
	m.Indices = indices
	m.attributes[AttributePosition] = positions
	m.attributes[AttributeNormal] = normals
	m.attributes[AttributeUV0] = uvs
	if err := m.GenerateTangents(); err != nil {
		core.LogError("%s", err)
	}
	return m
}

// NewPlane builds a square grid in the XZ plane facing +Y, split into
// subdivisions+1 cells along each side.
func NewPlane(size float32, subdivisions uint32) *Mesh {
	if size <= 0 {
		core.LogWarn("Plane size must be positive. Defaulting to one.")
		size = 1.0
	}
	cells := subdivisions + 1
	side := cells + 1
	half := size * 0.5

	positions := make(Float32x3, 0, side*side)
	normals := make(Float32x3, 0, side*side)
	uvs := make(Float32x2, 0, side*side)
	for z := uint32(0); z < side; z++ {
		for x := uint32(0); x < side; x++ {
			u := float32(x) / float32(cells)
			v := float32(z) / float32(cells)
			positions = append(positions, f32.Vec3{u*size - half, 0, v*size - half})
			normals = append(normals, f32.Vec3{0, 1, 0})
			uvs = append(uvs, f32.Vec2{u, v})
		}
	}

	indices := make([]uint32, 0, cells*cells*6)
	for z := uint32(0); z < cells; z++ {
		for x := uint32(0); x < cells; x++ {
			a := z*side + x
			b := a + 1
			c := a + side
			d := c + 1
			indices = append(indices, a, c, b, b, c, d)
		}
	}

	m := New(fmt.Sprintf("plane_%g_%d", size, subdivisions))
	m.Indices = indices
	m.attributes[AttributePosition] = positions
	m.attributes[AttributeNormal] = normals
	m.attributes[AttributeUV0] = uvs
	if err := m.GenerateTangents(); err != nil {
		core.LogError("%s", err)
	}
	return m
}
