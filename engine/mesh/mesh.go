package mesh

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/spaghettifunk/cubescene/engine/math"
)

var (
	ErrAttributeFormat = errors.New("attribute format mismatch")
	ErrAttributeLength = errors.New("attribute buffers differ in length")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoMesh          = errors.New("no mesh")
)

// Mesh owns the vertex attribute buffers and the triangle index list of a
// piece of geometry. Every present buffer holds one entry per vertex.
type Mesh struct {
	ID      uuid.UUID
	Name    string
	Indices []uint32

	attributes map[Attribute]VertexAttributeValues
}

func New(name string) *Mesh {
	return &Mesh{
		ID:         uuid.New(),
		Name:       name,
		attributes: make(map[Attribute]VertexAttributeValues),
	}
}

// InsertAttribute sets (or replaces) the buffer of attribute a.
func (m *Mesh) InsertAttribute(a Attribute, values VertexAttributeValues) error {
	if values == nil {
		return fmt.Errorf("%s: %w", a, ErrAttributeFormat)
	}
	if values.Format() != a.Format() {
		return fmt.Errorf("%s expects %s, got %s: %w", a, a.Format(), values.Format(), ErrAttributeFormat)
	}
	if m.attributes == nil {
		m.attributes = make(map[Attribute]VertexAttributeValues)
	}
	m.attributes[a] = values
	return nil
}

// Attribute returns the buffer of a, or nil when the mesh has none.
// The returned slice aliases the mesh storage.
func (m *Mesh) Attribute(a Attribute) VertexAttributeValues {
	return m.attributes[a]
}

func (m *Mesh) HasAttribute(a Attribute) bool {
	_, ok := m.attributes[a]
	return ok
}

func (m *Mesh) RemoveAttribute(a Attribute) VertexAttributeValues {
	v := m.attributes[a]
	delete(m.attributes, a)
	return v
}

// Attributes lists the present attributes in ascending tag order.
func (m *Mesh) Attributes() []Attribute {
	out := make([]Attribute, 0, len(m.attributes))
	for a := range m.attributes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *Mesh) Positions() Float32x3 {
	p, _ := m.attributes[AttributePosition].(Float32x3)
	return p
}

func (m *Mesh) Normals() Float32x3 {
	n, _ := m.attributes[AttributeNormal].(Float32x3)
	return n
}

func (m *Mesh) Tangents() Float32x3 {
	t, _ := m.attributes[AttributeTangent].(Float32x3)
	return t
}

func (m *Mesh) UVs() Float32x2 {
	uv, _ := m.attributes[AttributeUV0].(Float32x2)
	return uv
}

// VertexCount is the length of the position buffer, or of any buffer when
// positions are absent.
func (m *Mesh) VertexCount() int {
	if p, ok := m.attributes[AttributePosition]; ok {
		return p.Len()
	}
	for _, a := range m.Attributes() {
		return m.attributes[a].Len()
	}
	return 0
}

// Validate checks that all buffers have the same length and that every index
// refers to an existing vertex.
func (m *Mesh) Validate() error {
	count := m.VertexCount()
	for _, a := range m.Attributes() {
		if n := m.attributes[a].Len(); n != count {
			return fmt.Errorf("mesh %q: %s has %d vertices, expected %d: %w", m.Name, a, n, count, ErrAttributeLength)
		}
	}
	for i, idx := range m.Indices {
		if int(idx) >= count {
			return fmt.Errorf("mesh %q: index %d at %d: %w", m.Name, idx, i, ErrIndexOutOfRange)
		}
	}
	return nil
}

// ComputeAABB returns the bounds of the position buffer. A mesh without
// positions has zero extents.
func (m *Mesh) ComputeAABB() math.Extents3D {
	positions := m.Positions()
	if len(positions) == 0 {
		return math.Extents3D{}
	}
	ext := math.Extents3D{
		Min: math.NewVec3FromArray(positions[0]),
		Max: math.NewVec3FromArray(positions[0]),
	}
	for _, p := range positions[1:] {
		v := math.NewVec3FromArray(p)
		ext.Min = ext.Min.Min(v)
		ext.Max = ext.Max.Max(v)
	}
	return ext
}

// Clone deep copies the mesh under a fresh identifier.
func (m *Mesh) Clone() *Mesh {
	c := New(m.Name)
	c.Indices = append([]uint32(nil), m.Indices...)
	for a, v := range m.attributes {
		c.attributes[a] = v.clone()
	}
	return c
}
