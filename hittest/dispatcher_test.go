package hittest

import (
	"math"
	"testing"

	"github.com/lixenwraith/orb-garden/scene"
	"github.com/lixenwraith/orb-garden/vmath"
)

func lookDownZ() *vmath.Camera {
	return vmath.NewLookAtCamera(vmath.Vec3{}, vmath.Vec3{Z: -1}, vmath.Vec3{Y: 1}, math.Pi/3, 1)
}

func TestQueryPointerNearest(t *testing.T) {
	// Two spheres stacked on the view axis: the closer one must win
	reg := scene.NewRegistry([]scene.Spec{
		{Pos: vmath.Vec3{Z: -10}, Scale: 1},
		{Pos: vmath.Vec3{Z: -4}, Scale: 1},
		{Pos: vmath.Vec3{X: 50, Z: -4}, Scale: 1}, // Far off-axis
	})
	d := NewDispatcher(reg)

	obj, ok := d.QueryPointer(0, 0, lookDownZ())
	if !ok {
		t.Fatal("expected a hit on the view axis")
	}
	if obj.ID != 1 {
		t.Errorf("hit object %d, want nearest (1)", obj.ID)
	}
}

func TestQueryPointerMiss(t *testing.T) {
	reg := scene.NewRegistry([]scene.Spec{
		{Pos: vmath.Vec3{Z: -4}, Scale: 0.5},
	})
	d := NewDispatcher(reg)

	if _, ok := d.QueryPointer(0.9, 0.9, lookDownZ()); ok {
		t.Error("corner ray should miss a small centered sphere")
	}
	if _, ok := d.QueryPointer(0, 0, nil); ok {
		t.Error("nil camera should report no hit")
	}
}

func TestQueryProximity(t *testing.T) {
	reg := scene.NewRegistry([]scene.Spec{
		{Pos: vmath.Vec3{X: 2, Y: 3, Z: -3}, Scale: 0.7},
		{Pos: vmath.Vec3{X: 2.5, Y: 3, Z: -3}, Scale: 0.7},
		{Pos: vmath.Vec3{X: 10, Y: 3, Z: -3}, Scale: 0.7},
	})
	d := NewDispatcher(reg)

	// Point inside the first two spheres' margins, far from the third
	hits := d.QueryProximity(vmath.Vec3{X: 2, Y: 3, Z: -3}, 0.1)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}

	hits = d.QueryProximity(vmath.Vec3{X: 100, Y: 0, Z: 0}, 0.1)
	if len(hits) != 0 {
		t.Errorf("got %d hits far away, want 0", len(hits))
	}
}

func TestQueryProximityStrictBoundary(t *testing.T) {
	reg := scene.NewRegistry([]scene.Spec{
		{Pos: vmath.Vec3{}, Scale: 0.7},
	})
	d := NewDispatcher(reg)

	// Exactly scale+radius away: strict less-than excludes it
	if hits := d.QueryProximity(vmath.Vec3{X: 0.8}, 0.1); len(hits) != 0 {
		t.Errorf("boundary distance should not qualify, got %d hits", len(hits))
	}
	if hits := d.QueryProximity(vmath.Vec3{X: 0.799}, 0.1); len(hits) != 1 {
		t.Errorf("inside boundary should qualify, got %d hits", len(hits))
	}
}
