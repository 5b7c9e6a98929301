package mesh

import "github.com/spaghettifunk/cubescene/engine/math"

// Bake permanently applies t to the mesh's vertex data, so the mesh can be
// placed with an identity transform afterwards. Positions get the full
// scale, rotate, translate transform. Normals and tangents are only rotated,
// and are left alone when the rotation is near identity.
//
// Normals are not corrected with the inverse transpose, so they are only
// exact for uniform scale.
//
// Buffers are mutated in place and m is returned for chaining. Absent
// buffers are skipped. An exact identity leaves every buffer bit for bit
// unchanged, signed zeros included.
func (m *Mesh) Bake(t math.Transform) *Mesh {
	if m == nil || t.IsIdentity() {
		return m
	}

	if positions, ok := m.attributes[AttributePosition].(Float32x3); ok {
		for i, p := range positions {
			positions[i] = t.TransformPoint(math.NewVec3FromArray(p)).ToArray()
		}
	}

	if t.Rotation.IsNearIdentity() {
		return m
	}

	if normals, ok := m.attributes[AttributeNormal].(Float32x3); ok {
		rotateAll(normals, t.Rotation)
	}
	if tangents, ok := m.attributes[AttributeTangent].(Float32x3); ok {
		rotateAll(tangents, t.Rotation)
	}
	return m
}

func rotateAll(dirs Float32x3, rotation math.Quaternion) {
	for i, d := range dirs {
		dirs[i] = rotation.RotateVec3(math.NewVec3FromArray(d)).ToArray()
	}
}
