package xr

import (
	"github.com/lixenwraith/orb-garden/vmath"
)

// StaticSession is a scriptable in-memory Session for tests and demos
// Mutate the fields between frames to simulate tracking
type StaticSession struct {
	Active bool
	Points []vmath.Vec3
}

// Presenting implements Session
func (s *StaticSession) Presenting() bool {
	return s.Active
}

// Frame implements Session
func (s *StaticSession) Frame() (Frame, bool) {
	if !s.Active {
		return nil, false
	}
	f := &staticFrame{}
	for _, p := range s.Points {
		f.sources = append(f.sources, &staticSource{pos: p})
	}
	return f, true
}

type staticFrame struct {
	sources []InputSource
}

type staticRef struct{}

func (f *staticFrame) ReferenceSpace() (Space, bool) {
	return staticRef{}, true
}

func (f *staticFrame) InputSources() []InputSource {
	return f.sources
}

func (f *staticFrame) Pose(space, ref Space) (Pose, bool) {
	src, ok := space.(*staticSource)
	if !ok {
		return Pose{}, false
	}
	return Pose{Position: src.pos}, true
}

type staticSource struct {
	pos vmath.Vec3
}

// GripSpace returns the source itself as its grip-space token
func (s *staticSource) GripSpace() (Space, bool) {
	return s, true
}
