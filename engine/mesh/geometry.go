package mesh

import (
	"fmt"

	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/math"
)

// GenerateFlatNormals writes a face normal to the three vertices of every
// triangle. Vertices shared between faces end up with the last face's normal;
// smoothing should be done in a separate pass if desired.
func (m *Mesh) GenerateFlatNormals() error {
	positions := m.Positions()
	if positions == nil {
		return fmt.Errorf("mesh %q: generate normals: missing %s", m.Name, AttributePosition)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: generate normals: %d indices is not a triangle list", m.Name, len(m.Indices))
	}
	if err := m.Validate(); err != nil {
		return err
	}

	normals := make(Float32x3, len(positions))
	for i := 0; i < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0 := math.NewVec3FromArray(positions[i0])
		edge1 := math.NewVec3FromArray(positions[i1]).Sub(p0)
		edge2 := math.NewVec3FromArray(positions[i2]).Sub(p0)

		n := edge1.Cross(edge2).NormalizeOrZero().ToArray()
		normals[i0] = n
		normals[i1] = n
		normals[i2] = n
	}
	return m.InsertAttribute(AttributeNormal, normals)
}

// GenerateTangents derives a per-triangle tangent, pointing along +U, from
// positions and UVs. Handedness is not stored.
func (m *Mesh) GenerateTangents() error {
	positions := m.Positions()
	uvs := m.UVs()
	if positions == nil || uvs == nil {
		return fmt.Errorf("mesh %q: generate tangents: needs %s and %s", m.Name, AttributePosition, AttributeUV0)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: generate tangents: %d indices is not a triangle list", m.Name, len(m.Indices))
	}
	if err := m.Validate(); err != nil {
		return err
	}

	tangents := make(Float32x3, len(positions))
	degenerate := 0
	for i := 0; i < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]

		p0 := math.NewVec3FromArray(positions[i0])
		edge1 := math.NewVec3FromArray(positions[i1]).Sub(p0)
		edge2 := math.NewVec3FromArray(positions[i2]).Sub(p0)

		deltaU1 := uvs[i1][0] - uvs[i0][0]
		deltaV1 := uvs[i1][1] - uvs[i0][1]
		deltaU2 := uvs[i2][0] - uvs[i0][0]
		deltaV2 := uvs[i2][1] - uvs[i0][1]

		dividend := deltaU1*deltaV2 - deltaU2*deltaV1
		if dividend == 0 {
			degenerate++
			continue
		}
		fc := 1.0 / dividend

		tangent := math.NewVec3(
			fc*(deltaV2*edge1.X-deltaV1*edge2.X),
			fc*(deltaV2*edge1.Y-deltaV1*edge2.Y),
			fc*(deltaV2*edge1.Z-deltaV1*edge2.Z),
		).NormalizeOrZero()

		t := tangent.ToArray()
		tangents[i0] = t
		tangents[i1] = t
		tangents[i2] = t
	}
	if degenerate > 0 {
		core.LogDebug("mesh %q: %d triangles with degenerate UVs got no tangent", m.Name, degenerate)
	}
	return m.InsertAttribute(AttributeTangent, tangents)
}
