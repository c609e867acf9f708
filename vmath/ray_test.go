package vmath

import (
	"math"
	"testing"
)

func TestSphereIntersect(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		center Vec3
		radius float64
		wantT  float64
		hit    bool
	}{
		{
			name:   "head-on hit",
			ray:    Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}},
			center: Vec3{Z: -5},
			radius: 1,
			wantT:  4,
			hit:    true,
		},
		{
			name:   "clean miss",
			ray:    Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}},
			center: Vec3{X: 5, Z: -5},
			radius: 1,
			hit:    false,
		},
		{
			name:   "sphere behind origin",
			ray:    Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}},
			center: Vec3{Z: 5},
			radius: 1,
			hit:    false,
		},
		{
			name:   "origin inside sphere reports exit",
			ray:    Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}},
			center: Vec3{},
			radius: 2,
			wantT:  2,
			hit:    true,
		},
		{
			name:   "grazing tangent",
			ray:    Ray{Origin: Vec3{X: 1}, Dir: Vec3{Z: -1}},
			center: Vec3{Z: -3},
			radius: 1,
			wantT:  3,
			hit:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, hit := SphereIntersect(tt.ray, tt.center, tt.radius)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", gotT, tt.wantT)
			}
		})
	}
}

func TestScreenRayCenter(t *testing.T) {
	cam := NewLookAtCamera(Vec3{}, Vec3{Z: -1}, Vec3{Y: 1}, math.Pi/3, 1.5)

	ray := cam.ScreenRay(0, 0)
	if math.Abs(ray.Dir.X) > 1e-9 || math.Abs(ray.Dir.Y) > 1e-9 || math.Abs(ray.Dir.Z+1) > 1e-9 {
		t.Errorf("center ray should match forward, got %+v", ray.Dir)
	}
}

func TestScreenRayCorners(t *testing.T) {
	cam := NewLookAtCamera(Vec3{}, Vec3{Z: -1}, Vec3{Y: 1}, math.Pi/2, 1)

	up := cam.ScreenRay(0, 1)
	if up.Dir.Y <= 0 {
		t.Errorf("+Y NDC should aim above the horizon, got %+v", up.Dir)
	}
	right := cam.ScreenRay(1, 0)
	if right.Dir.X <= 0 {
		t.Errorf("+X NDC should aim right, got %+v", right.Dir)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	cam := NewLookAtCamera(Vec3{Y: 1.8, Z: 2}, Vec3{Y: 1.8, Z: -3}, Vec3{Y: 1}, math.Pi/3, 2)

	p := Vec3{X: 1, Y: 2.2, Z: -3}
	ndcX, ndcY, depth, ok := cam.Project(p)
	if !ok {
		t.Fatal("point in front of camera did not project")
	}
	if depth <= 0 {
		t.Fatalf("depth = %v, want positive", depth)
	}

	// Casting back through the projected NDC must pass through the point
	ray := cam.ScreenRay(ndcX, ndcY)
	at := ray.At(V3Dist(cam.Position, p))
	if V3Dist(at, p) > 1e-6 {
		t.Errorf("reprojected point %+v, want %+v", at, p)
	}

	if _, _, _, ok := cam.Project(Vec3{Y: 1.8, Z: 10}); ok {
		t.Error("point behind camera should not project")
	}
}
