package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orb-garden/core"
	"github.com/lixenwraith/orb-garden/vmath"
)

// Object is one interactive sphere in the scene
//
// Pos and Scale are fixed after population. Rotation is advanced every
// frame by the registry; Color changes only through a successful
// interaction. Objects live for the whole session
type Object struct {
	ID    core.ObjectID
	Pos   vmath.Vec3
	Scale float64 // Sphere radius, uniform

	Rotation      vmath.Vec3 // Accumulated radians per axis, unbounded
	RotationSpeed vmath.Vec3 // Radians per second per axis

	Color     colorful.Color // Current, read by the renderer each frame
	BaseColor colorful.Color

	// SoundIndex selects a pool from the interaction pool set; an index
	// with no matching pool makes the audio side of interaction a no-op
	SoundIndex int
}
