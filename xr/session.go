// Package xr defines the contracts the frame loop consumes to recover
// tracked poses from an immersive session. Every accessor can report
// "unavailable" at any moment (session not presenting, no pose this
// frame, no grip space on a source); callers treat that as an empty
// result for the frame, never as an error
package xr

import (
	"github.com/lixenwraith/orb-garden/vmath"
)

// Space is an opaque tracking-space token handed back to Frame.Pose
type Space interface{}

// Pose is a resolved 3D transform for one space at one frame
// Only the position is consumed by proximity interaction
type Pose struct {
	Position vmath.Vec3
}

// InputSource is one tracked controller or hand
type InputSource interface {
	// GripSpace returns the source's grip space, false when the source
	// carries no grip this frame
	GripSpace() (Space, bool)
}

// Frame is one immersive frame's tracking snapshot
type Frame interface {
	// ReferenceSpace returns the session reference space, false when
	// tracking has not been established
	ReferenceSpace() (Space, bool)

	// InputSources lists the sources tracked this frame, possibly empty
	InputSources() []InputSource

	// Pose resolves space relative to ref, false when no pose exists
	// this frame
	Pose(space, ref Space) (Pose, bool)
}

// Session is the immersive session accessor
type Session interface {
	// Presenting reports whether an immersive session is active
	Presenting() bool

	// Frame returns the current frame, false between frames or when the
	// session is not presenting
	Frame() (Frame, bool)
}
