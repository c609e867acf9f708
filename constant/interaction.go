package constant

import "time"

// Interaction Settings

const (
	// ProximityCooldown is the minimum gap between two accepted proximity
	// triggers on the same object. Pointer clicks are never throttled.
	ProximityCooldown = 200 * time.Millisecond

	// ProximityRadius approximates the physical extent of a tracked hand,
	// added to an object's scale when testing 3D nearness
	ProximityRadius = 0.1
)

// Animation Settings

const (
	// FrameInterval is the headless/terminal frame pacing target
	FrameInterval = 33 * time.Millisecond
)
