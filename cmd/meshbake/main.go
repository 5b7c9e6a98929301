// meshbake applies a transform to every mesh of a glTF file and writes the
// result, so the meshes can be placed with an identity transform.
//
//	meshbake -in ground.gltf -out ground_baked.glb -rotate-euler -90,0,0
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/math"
	"github.com/spaghettifunk/cubescene/engine/mesh"
)

func main() {
	in := flag.String("in", "", "input .gltf or .glb file")
	out := flag.String("out", "", "output .gltf or .glb file")
	translate := flag.String("translate", "0,0,0", "translation x,y,z")
	rotate := flag.String("rotate-euler", "0,0,0", "rotation about x,y,z in degrees, applied in that order")
	scale := flag.String("scale", "1,1,1", "scale x,y,z")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		core.SetLogLevel(core.DebugLevel)
	}
	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "meshbake: -in and -out are required")
		flag.Usage()
		os.Exit(2)
	}

	t, err := parseTransform(*translate, *rotate, *scale)
	if err != nil {
		core.LogFatal("%s", err)
	}
	if err := bakeFile(*in, *out, t); err != nil {
		core.LogFatal("%s", err)
	}
}

func bakeFile(in, out string, t math.Transform) error {
	meshes, err := mesh.LoadGLTF(in)
	if err != nil {
		return err
	}
	for _, m := range meshes {
		m.Bake(t)
		core.LogInfo("baked %q (%d vertices)", m.Name, m.VertexCount())
	}
	return mesh.SaveGLTF(out, meshes...)
}

func parseTransform(translate, rotate, scale string) (math.Transform, error) {
	tr, err := parseVec3(translate)
	if err != nil {
		return math.Transform{}, fmt.Errorf("-translate: %w", err)
	}
	euler, err := parseVec3(rotate)
	if err != nil {
		return math.Transform{}, fmt.Errorf("-rotate-euler: %w", err)
	}
	sc, err := parseVec3(scale)
	if err != nil {
		return math.Transform{}, fmt.Errorf("-scale: %w", err)
	}

	rotation := math.NewQuatFromEulerXYZ(math.DegToRad(euler.X), math.DegToRad(euler.Y), math.DegToRad(euler.Z))
	return *math.TransformFromTranslationRotationScale(tr, rotation, sc), nil
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("%q: want x,y,z", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return math.NewVec3(v[0], v[1], v[2]), nil
}
