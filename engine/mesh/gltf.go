package mesh

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/spaghettifunk/cubescene/engine/core"
	"golang.org/x/image/math/f32"
)

const (
	gltfPosition  = "POSITION"
	gltfNormal    = "NORMAL"
	gltfTangent   = "TANGENT"
	gltfTexcoord0 = "TEXCOORD_0"
	gltfColor0    = "COLOR_0"
)

// LoadGLTF reads every triangle primitive of a .gltf or .glb file as a Mesh.
// Primitives of meshes with more than one get a ".<n>" name suffix.
// glTF tangents carry a handedness sign in w; it is dropped.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open gltf %q", path)
	}

	meshes := make([]*Mesh, 0, len(doc.Meshes))
	for iMesh, gm := range doc.Meshes {
		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), iMesh)
		}
		for iPrim, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				core.LogWarn("gltf %q: mesh %q primitive %d is not a triangle list, skipping", path, name, iPrim)
				continue
			}
			primName := name
			if len(gm.Primitives) > 1 {
				primName = fmt.Sprintf("%s.%d", name, iPrim)
			}
			m, err := readPrimitive(doc, prim, primName)
			if err != nil {
				return nil, errors.Wrapf(err, "gltf %q", path)
			}
			meshes = append(meshes, m)
		}
	}
	if len(meshes) == 0 {
		return nil, errors.Wrapf(ErrNoMesh, "gltf %q", path)
	}
	return meshes, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive, name string) (*Mesh, error) {
	m := New(name)

	if idx, ok := prim.Attributes[gltfPosition]; ok {
		data, err := modeler.ReadPosition(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q: read %s", name, gltfPosition)
		}
		m.attributes[AttributePosition] = toFloat32x3(data)
	}
	if idx, ok := prim.Attributes[gltfNormal]; ok {
		data, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q: read %s", name, gltfNormal)
		}
		m.attributes[AttributeNormal] = toFloat32x3(data)
	}
	if idx, ok := prim.Attributes[gltfTangent]; ok {
		data, err := modeler.ReadTangent(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q: read %s", name, gltfTangent)
		}
		tangents := make(Float32x3, len(data))
		for i, t := range data {
			tangents[i] = f32.Vec3{t[0], t[1], t[2]}
		}
		m.attributes[AttributeTangent] = tangents
	}
	if idx, ok := prim.Attributes[gltfTexcoord0]; ok {
		data, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q: read %s", name, gltfTexcoord0)
		}
		uvs := make(Float32x2, len(data))
		for i, uv := range data {
			uvs[i] = f32.Vec2(uv)
		}
		m.attributes[AttributeUV0] = uvs
	}
	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q: read indices", name)
		}
		m.Indices = indices
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func toFloat32x3(data [][3]float32) Float32x3 {
	out := make(Float32x3, len(data))
	for i, v := range data {
		out[i] = f32.Vec3(v)
	}
	return out
}

// SaveGLTF writes the meshes, one node each, to path. A ".glb" extension
// selects the binary container.
func SaveGLTF(path string, meshes ...*Mesh) error {
	if len(meshes) == 0 {
		return errors.Wrapf(ErrNoMesh, "save gltf %q", path)
	}

	doc := gltf.NewDocument()
	for _, m := range meshes {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "save gltf %q", path)
		}

		attributes := make(map[string]uint32)
		if p := m.Positions(); p != nil {
			data := make([][3]float32, len(p))
			for i, v := range p {
				data[i] = [3]float32(v)
			}
			attributes[gltfPosition] = modeler.WritePosition(doc, data)
		}
		if n := m.Normals(); n != nil {
			data := make([][3]float32, len(n))
			for i, v := range n {
				data[i] = [3]float32(v)
			}
			attributes[gltfNormal] = modeler.WriteNormal(doc, data)
		}
		if t := m.Tangents(); t != nil {
			data := make([][4]float32, len(t))
			for i, v := range t {
				data[i] = [4]float32{v[0], v[1], v[2], 1.0}
			}
			attributes[gltfTangent] = modeler.WriteTangent(doc, data)
		}
		if uv := m.UVs(); uv != nil {
			data := make([][2]float32, len(uv))
			for i, v := range uv {
				data[i] = [2]float32(v)
			}
			attributes[gltfTexcoord0] = modeler.WriteTextureCoord(doc, data)
		}
		if c, ok := m.Attribute(AttributeColor).(Float32x4); ok {
			data := make([][4]float32, len(c))
			for i, v := range c {
				data[i] = [4]float32(v)
			}
			attributes[gltfColor0] = modeler.WriteColor(doc, data)
		}

		prim := &gltf.Primitive{
			Attributes: attributes,
		}
		if len(m.Indices) > 0 {
			prim.Indices = gltf.Index(modeler.WriteIndices(doc, m.Indices))
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       m.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		// vertex data goes to a sibling .bin file
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		for i, b := range doc.Buffers {
			if b.URI == "" {
				b.URI = fmt.Sprintf("%s_%d.bin", base, i)
			}
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to save gltf %q", path)
	}
	return nil
}
