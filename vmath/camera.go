package vmath

import (
	"math"
)

// Camera is a pinhole perspective camera with an orthonormal basis
// FOV is the vertical field of view in radians
type Camera struct {
	Position Vec3
	Forward  Vec3
	Right    Vec3
	Up       Vec3
	FOV      float64
	Aspect   float64
}

// NewLookAtCamera builds a camera at pos facing target
// worldUp resolves the roll; it must not be parallel to the view direction
func NewLookAtCamera(pos, target, worldUp Vec3, fov, aspect float64) *Camera {
	forward := V3Normalize(V3Sub(target, pos))
	right := V3Normalize(V3Cross(forward, worldUp))
	up := V3Cross(right, forward)

	return &Camera{
		Position: pos,
		Forward:  forward,
		Right:    right,
		Up:       up,
		FOV:      fov,
		Aspect:   aspect,
	}
}

// ScreenRay casts through a normalized device coordinate
// ndcX and ndcY range over [-1, 1] with the origin at screen center and
// +Y toward the top of the screen
func (c *Camera) ScreenRay(ndcX, ndcY float64) Ray {
	halfH := math.Tan(c.FOV / 2)
	halfW := halfH * c.Aspect

	dir := V3Add(c.Forward, V3Add(
		V3Scale(c.Right, ndcX*halfW),
		V3Scale(c.Up, ndcY*halfH),
	))

	return Ray{Origin: c.Position, Dir: V3Normalize(dir)}
}

// Project maps a world point to NDC, returning false when the point is
// behind the camera plane
func (c *Camera) Project(p Vec3) (ndcX, ndcY, depth float64, ok bool) {
	rel := V3Sub(p, c.Position)

	z := V3Dot(rel, c.Forward)
	if z <= 0 {
		return 0, 0, 0, false
	}

	halfH := math.Tan(c.FOV / 2)
	halfW := halfH * c.Aspect

	ndcX = V3Dot(rel, c.Right) / (z * halfW)
	ndcY = V3Dot(rel, c.Up) / (z * halfH)
	return ndcX, ndcY, z, true
}
