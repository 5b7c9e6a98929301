package math

func TransformCreate() *Transform {
	t := &Transform{}
	t.SetTranslationRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
	return t
}

func TransformFromTranslation(translation Vec3) *Transform {
	t := &Transform{}
	t.SetTranslationRotationScale(translation, NewQuatIdentity(), NewVec3One())
	return t
}

func TransformFromRotation(rotation Quaternion) *Transform {
	t := &Transform{}
	t.SetTranslationRotationScale(NewVec3Zero(), rotation, NewVec3One())
	return t
}

func TransformFromScale(scale Vec3) *Transform {
	t := &Transform{}
	t.SetTranslationRotationScale(NewVec3Zero(), NewQuatIdentity(), scale)
	return t
}

func TransformFromTranslationRotationScale(translation Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{}
	t.SetTranslationRotationScale(translation, rotation, scale)
	return t
}

func (t *Transform) SetTranslation(translation Vec3) {
	t.Translation = translation
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Translation = t.Translation.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

func (t *Transform) SetTranslationRotationScale(translation Vec3, rotation Quaternion, scale Vec3) {
	t.Translation = translation
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

// LookAt rotates the transform so that its forward axis (-Z) points at
// target and its up axis is as close to up as possible. Nothing happens when
// target coincides with the translation or is colinear with up.
func (t *Transform) LookAt(target, up Vec3) {
	back := t.Translation.Sub(target).NormalizeOrZero()
	right := up.Cross(back).NormalizeOrZero()
	if back == NewVec3Zero() || right == NewVec3Zero() {
		return
	}
	realUp := back.Cross(right)
	t.SetRotation(NewQuatFromBasis(right, realUp, back))
}

// LookingAt returns a copy of the transform facing target.
func (t Transform) LookingAt(target, up Vec3) Transform {
	t.LookAt(target, up)
	return t
}

// Forward returns the direction the transform is facing (-Z rotated).
func (t Transform) Forward() Vec3 {
	return t.Rotation.RotateVec3(NewVec3Forward())
}

// TransformPoint applies the full affine transform to a point: scale first,
// then rotation, then translation.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Rotation.RotateVec3(p.Mul(t.Scale)).Add(t.Translation)
}

// TransformDirection applies only the rotation.
func (t Transform) TransformDirection(v Vec3) Vec3 {
	return t.Rotation.RotateVec3(v)
}

// IsIdentity reports whether the transform leaves every point where it is.
func (t Transform) IsIdentity() bool {
	return t.Translation == NewVec3Zero() && t.Scale == NewVec3One() && t.Rotation == NewQuatIdentity()
}

// GetLocal returns the scale-rotate-translate matrix, rebuilding it only
// when the transform changed.
func (t *Transform) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		s := NewMat4Scale(t.Scale)
		r := t.Rotation.ToMat4()
		tr := NewMat4Translation(t.Translation)
		t.Local = s.Mul(r).Mul(tr)
		t.IsDirty = false
	}
	return t.Local
}
