package scene

import (
	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/math"
)

const DefaultSpeed float32 = 0.5

// KeyboardState reports which keys are held during the current frame.
type KeyboardState interface {
	IsKeyDown(key core.KeyCode) bool
}

// CoreInput reads the engine input subsystem.
type CoreInput struct{}

func (CoreInput) IsKeyDown(key core.KeyCode) bool {
	return core.InputIsKeyDown(key)
}

// ChangeSpeedSystem adds a fifth of every wheel delta to the speed, which
// never drops below zero.
func ChangeSpeedSystem(s *Scene, wheel []float32) {
	for _, y := range wheel {
		s.Speed = math.AtLeast(s.Speed+y/5.0, 0)
	}
}

// KeyboardMoveSystem moves every player on the ground plane. W/S and D/A
// give a direction in camera space which is rotated into the world, flattened
// and scaled to speed*deltaTime.
func KeyboardMoveSystem(s *Scene, input KeyboardState, deltaTime float32) {
	vv := axis(input, core.KEY_W, core.KEY_S)
	vh := axis(input, core.KEY_D, core.KEY_A)

	d := math.NewVec3(vh, vv, 0)
	if pov := s.Pov(); pov != nil {
		d = pov.Transform.Rotation.RotateVec3(d)
	}
	d.Y = 0
	d = d.NormalizeOrZero().MulScalar(deltaTime * s.Speed)

	for _, e := range s.Query(TagPlayer) {
		e.Transform.Translate(d)
	}
}

func axis(input KeyboardState, positive, negative core.KeyCode) float32 {
	var v float32
	if input.IsKeyDown(positive) {
		v++
	}
	if input.IsKeyDown(negative) {
		v--
	}
	return v
}
