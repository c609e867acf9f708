package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orb-garden/vmath"
)

// DefaultLayout is the stock orb arrangement: a loose arc of spheres at
// roughly standing height, each wired to one of the sound pools
func DefaultLayout() []Spec {
	return []Spec{
		{Pos: vmath.Vec3{X: -3, Y: 1.2, Z: -4}, Scale: 0.6, RotationSpeed: vmath.Vec3{Y: 0.6, Z: 0.6}, Color: colorful.Color{R: 0.85, G: 0.33, B: 0.31}, SoundIndex: 0},
		{Pos: vmath.Vec3{X: -1.5, Y: 1.6, Z: -3.2}, Scale: 0.4, RotationSpeed: vmath.Vec3{X: 0.4, Y: 0.8}, Color: colorful.Color{R: 0.36, G: 0.68, B: 0.89}, SoundIndex: 1},
		{Pos: vmath.Vec3{X: 0, Y: 1.4, Z: -3.5}, Scale: 0.5, RotationSpeed: vmath.Vec3{Y: 0.5, Z: 0.3}, Color: colorful.Color{R: 0.98, G: 0.79, B: 0.29}, SoundIndex: 2},
		{Pos: vmath.Vec3{X: 1.5, Y: 1.7, Z: -3.2}, Scale: 0.45, RotationSpeed: vmath.Vec3{X: 0.7, Z: 0.5}, Color: colorful.Color{R: 0.47, G: 0.82, B: 0.45}, SoundIndex: 3},
		{Pos: vmath.Vec3{X: 3, Y: 1.3, Z: -4}, Scale: 0.65, RotationSpeed: vmath.Vec3{Y: 0.9}, Color: colorful.Color{R: 0.73, G: 0.49, B: 0.87}, SoundIndex: 0},
		{Pos: vmath.Vec3{X: -2, Y: 2.6, Z: -5}, Scale: 0.7, RotationSpeed: vmath.Vec3{X: 0.3, Y: 0.3, Z: 0.3}, Color: colorful.Color{R: 0.93, G: 0.55, B: 0.2}, SoundIndex: 1},
		{Pos: vmath.Vec3{X: 2, Y: 3, Z: -3}, Scale: 0.7, RotationSpeed: vmath.Vec3{Y: 0.6, Z: 0.6}, Color: colorful.Color{R: 0.35, G: 0.78, B: 0.75}, SoundIndex: 2},
		{Pos: vmath.Vec3{X: 0, Y: 2.9, Z: -6}, Scale: 0.9, RotationSpeed: vmath.Vec3{X: 0.2, Y: 0.4}, Color: colorful.Color{R: 0.89, G: 0.44, B: 0.64}, SoundIndex: 3},
	}
}
