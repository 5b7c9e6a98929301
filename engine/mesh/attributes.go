package mesh

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Attribute is the semantic tag of a per-vertex buffer.
type Attribute uint8

const (
	AttributePosition Attribute = iota
	AttributeNormal
	AttributeUV0
	AttributeTangent
	AttributeColor
)

var attributeNames = map[Attribute]string{
	AttributePosition: "Vertex_Position",
	AttributeNormal:   "Vertex_Normal",
	AttributeUV0:      "Vertex_Uv",
	AttributeTangent:  "Vertex_Tangent",
	AttributeColor:    "Vertex_Color",
}

func (a Attribute) String() string {
	if n, ok := attributeNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// Format returns the only value format accepted for the attribute.
func (a Attribute) Format() VertexFormat {
	switch a {
	case AttributeUV0:
		return FormatFloat32x2
	case AttributeColor:
		return FormatFloat32x4
	default:
		return FormatFloat32x3
	}
}

type VertexFormat uint8

const (
	FormatFloat32x2 VertexFormat = iota + 1
	FormatFloat32x3
	FormatFloat32x4
)

func (f VertexFormat) String() string {
	switch f {
	case FormatFloat32x2:
		return "Float32x2"
	case FormatFloat32x3:
		return "Float32x3"
	case FormatFloat32x4:
		return "Float32x4"
	}
	return "Unknown"
}

// VertexAttributeValues is one attribute buffer: a run of fixed size float
// tuples, one per vertex.
type VertexAttributeValues interface {
	Len() int
	Format() VertexFormat
	clone() VertexAttributeValues
}

type Float32x2 []f32.Vec2

func (v Float32x2) Len() int                     { return len(v) }
func (v Float32x2) Format() VertexFormat         { return FormatFloat32x2 }
func (v Float32x2) clone() VertexAttributeValues { return append(Float32x2(nil), v...) }

type Float32x3 []f32.Vec3

func (v Float32x3) Len() int                     { return len(v) }
func (v Float32x3) Format() VertexFormat         { return FormatFloat32x3 }
func (v Float32x3) clone() VertexAttributeValues { return append(Float32x3(nil), v...) }

type Float32x4 []f32.Vec4

func (v Float32x4) Len() int                     { return len(v) }
func (v Float32x4) Format() VertexFormat         { return FormatFloat32x4 }
func (v Float32x4) clone() VertexAttributeValues { return append(Float32x4(nil), v...) }
