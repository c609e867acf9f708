package hittest

import (
	"github.com/lixenwraith/orb-garden/scene"
	"github.com/lixenwraith/orb-garden/vmath"
)

// Dispatcher answers hit queries against the scene's interactive objects
// Two modes exist for the two input modalities: a camera ray cast from a
// 2D pointer coordinate, and a 3D nearness test around a tracked point
type Dispatcher struct {
	registry *scene.Registry
}

// NewDispatcher creates a dispatcher over the given registry
func NewDispatcher(registry *scene.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// QueryPointer casts a camera ray through a normalized device coordinate
// and returns the nearest intersected object, or false on a clean miss
//
// ndcX and ndcY range over [-1, 1], origin at screen center, +Y up
func (d *Dispatcher) QueryPointer(ndcX, ndcY float64, cam *vmath.Camera) (*scene.Object, bool) {
	if cam == nil {
		return nil, false
	}

	ray := cam.ScreenRay(ndcX, ndcY)

	var nearest *scene.Object
	nearestT := 0.0
	for _, obj := range d.registry.Objects() {
		t, hit := vmath.SphereIntersect(ray, obj.Pos, obj.Scale)
		if !hit {
			continue
		}
		if nearest == nil || t < nearestT {
			nearest = obj
			nearestT = t
		}
	}

	if nearest == nil {
		return nil, false
	}
	return nearest, true
}

// QueryProximity returns every object whose center lies strictly within
// its own scale plus proximityRadius of the tracked point
//
// Unlike pointer mode this can report several objects at once: multiple
// spheres can overlap one hand volume, and each proceeds independently to
// the cooldown gate
func (d *Dispatcher) QueryProximity(point vmath.Vec3, proximityRadius float64) []*scene.Object {
	var hits []*scene.Object
	for _, obj := range d.registry.Objects() {
		if vmath.V3Dist(point, obj.Pos) < obj.Scale+proximityRadius {
			hits = append(hits, obj)
		}
	}
	return hits
}
