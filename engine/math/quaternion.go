package math

import m "math"

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return ksqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The
 * result applies other first, then q.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

// Compare reports whether every component of q is within tolerance of other.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).ToVec3().Compare(Vec4(other).ToVec3(), tolerance) && kabs(q.W-other.W) <= tolerance
}

/**
 * @brief Rotates a direction by this quaternion. The quaternion is
 * expected to be normalized; translation and scale play no part.
 *
 * @param v The vector to rotate.
 * @return The rotated vector.
 */
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	// v' = v + 2w(u x v) + 2u x (u x v)
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.MulScalar(2.0 * q.W)).Add(uuv.MulScalar(2.0))
}

// IsNearIdentity reports whether the rotation described by q is smaller than
// K_NEAR_IDENTITY_ANGLE. q and -q describe the same rotation, so the sign of
// w is ignored.
func (q Quaternion) IsNearIdentity() bool {
	w := m.Min(m.Abs(float64(q.W)), 1.0)
	angle := 2.0 * m.Acos(w)
	return angle < float64(K_NEAR_IDENTITY_ANGLE)
}

/**
 * @brief Creates a rotation matrix from the given quaternion, laid out
 * for row vectors (see Vec3.Transform).
 */
func (q Quaternion) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()

	n := q.Normalize()

	out_matrix.Data[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out_matrix.Data[1] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out_matrix.Data[2] = 2.0*n.X*n.Z - 2.0*n.Y*n.W

	out_matrix.Data[4] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out_matrix.Data[5] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out_matrix.Data[6] = 2.0*n.Y*n.Z + 2.0*n.X*n.W

	out_matrix.Data[8] = 2.0*n.X*n.Z + 2.0*n.Y*n.W
	out_matrix.Data[9] = 2.0*n.Y*n.Z - 2.0*n.X*n.W
	out_matrix.Data[10] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out_matrix
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q = q.Normalize()
	}
	return q
}

func NewQuatFromRotationX(angle float32) Quaternion {
	return NewQuatFromAxisAngle(NewVec3Right(), angle, false)
}

func NewQuatFromRotationY(angle float32) Quaternion {
	return NewQuatFromAxisAngle(NewVec3Up(), angle, false)
}

func NewQuatFromRotationZ(angle float32) Quaternion {
	return NewQuatFromAxisAngle(NewVec3Back(), angle, false)
}

// NewQuatFromEulerXYZ builds a rotation that applies x first, then y, then z.
func NewQuatFromEulerXYZ(x, y, z float32) Quaternion {
	return NewQuatFromRotationZ(z).Mul(NewQuatFromRotationY(y)).Mul(NewQuatFromRotationX(x))
}

/**
 * @brief Creates the rotation that maps the unit axes onto the provided
 * orthonormal basis.
 *
 * @param right Where +X ends up.
 * @param up Where +Y ends up.
 * @param back Where +Z ends up.
 * @return A normalized quaternion.
 */
func NewQuatFromBasis(right, up, back Vec3) Quaternion {
	m00, m10, m20 := right.X, right.Y, right.Z
	m01, m11, m21 := up.X, up.Y, up.Z
	m02, m12, m22 := back.X, back.Y, back.Z

	var q Quaternion
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / ksqrt(trace+1.0)
		q = Quaternion{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2.0 * ksqrt(1.0+m00-m11-m22)
		q = Quaternion{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2.0 * ksqrt(1.0+m11-m00-m22)
		q = Quaternion{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2.0 * ksqrt(1.0+m22-m00-m11)
		q = Quaternion{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
	return q.Normalize()
}
