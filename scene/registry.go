package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orb-garden/core"
	"github.com/lixenwraith/orb-garden/vmath"
)

// Spec is the static per-object configuration the scene is populated from
type Spec struct {
	Pos           vmath.Vec3
	Scale         float64
	RotationSpeed vmath.Vec3
	Color         colorful.Color
	SoundIndex    int
}

// Registry holds the fixed set of interactive objects
// Populated once at startup; objects are never added or removed afterward
type Registry struct {
	objects []*Object
}

// NewRegistry populates the registry from static configuration
// Object IDs are assigned in spec order
func NewRegistry(specs []Spec) *Registry {
	r := &Registry{
		objects: make([]*Object, 0, len(specs)),
	}
	for i, s := range specs {
		r.objects = append(r.objects, &Object{
			ID:            core.ObjectID(i),
			Pos:           s.Pos,
			Scale:         s.Scale,
			RotationSpeed: s.RotationSpeed,
			Color:         s.Color,
			BaseColor:     s.Color,
			SoundIndex:    s.SoundIndex,
		})
	}
	return r
}

// Objects returns the full ordered object sequence
// The slice is shared, callers must not reorder it
func (r *Registry) Objects() []*Object {
	return r.objects
}

// Get returns the object with the given ID
func (r *Registry) Get(id core.ObjectID) (*Object, bool) {
	if int(id) < 0 || int(id) >= len(r.objects) {
		return nil, false
	}
	return r.objects[int(id)], true
}

// Advance accumulates per-axis rotation for every object
// Linear in dt, so the result is frame-rate independent; angles grow
// without wraparound, matching the render layer's periodicity
func (r *Registry) Advance(dtSeconds float64) {
	for _, obj := range r.objects {
		obj.Rotation.X += dtSeconds * obj.RotationSpeed.X
		obj.Rotation.Y += dtSeconds * obj.RotationSpeed.Y
		obj.Rotation.Z += dtSeconds * obj.RotationSpeed.Z
	}
}
