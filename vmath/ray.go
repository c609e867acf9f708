package vmath

import (
	"math"
)

// Ray is a half-line from Origin along unit Dir
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, t))
}

// SphereIntersect returns the nearest positive ray parameter at which the
// ray enters the sphere, or false when the ray misses entirely
// A ray starting inside the sphere reports the exit point
func SphereIntersect(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := V3Sub(r.Origin, center)

	// Quadratic in t: |oc + t*dir|^2 = radius^2
	a := V3Dot(r.Dir, r.Dir)
	halfB := V3Dot(oc, r.Dir)
	c := V3MagSq(oc) - radius*radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(disc)

	t := (-halfB - sqrtD) / a
	if t > 0 {
		return t, true
	}
	t = (-halfB + sqrtD) / a
	if t > 0 {
		return t, true
	}
	return 0, false
}
