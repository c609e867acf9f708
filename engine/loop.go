package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/orb-garden/interaction"
	"github.com/lixenwraith/orb-garden/scene"
	"github.com/lixenwraith/orb-garden/vmath"
	"github.com/lixenwraith/orb-garden/xr"
)

// Loop drives the per-frame animation and proximity pass
//
// One goroutine calls Step; pointer handlers run interleaved on the same
// event loop, so registry and cooldown state stay lock-free. A nil
// Session simply skips the proximity pass
type Loop struct {
	Registry   *scene.Registry
	Controller *interaction.Controller
	Session    xr.Session
	Clock      Clock

	started bool
	start   time.Time
	last    time.Time
}

// NewLoop wires a frame loop; a nil clock falls back to the system clock
func NewLoop(registry *scene.Registry, controller *interaction.Controller, session xr.Session, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		Registry:   registry,
		Controller: controller,
		Session:    session,
		Clock:      clock,
	}
}

// Step advances one frame: rotation from measured dt, then the XR
// proximity pass. The first call establishes the time base and applies a
// zero dt
func (l *Loop) Step() {
	now := l.Clock.Now()
	if !l.started {
		l.started = true
		l.start = now
		l.last = now
	}

	dt := now.Sub(l.last).Seconds()
	l.last = now

	l.Registry.Advance(dt)
	l.pollProximity(now.Sub(l.start))
}

// pollProximity recovers grip positions for the current immersive frame
// Any missing piece (session, frame, reference space, grip space, pose)
// silently ends the pass for this frame; per-frame misses are routine and
// never logged
func (l *Loop) pollProximity(elapsed time.Duration) {
	if l.Session == nil || !l.Session.Presenting() {
		return
	}
	frame, ok := l.Session.Frame()
	if !ok {
		return
	}
	ref, ok := frame.ReferenceSpace()
	if !ok {
		return
	}

	var points []vmath.Vec3
	for _, src := range frame.InputSources() {
		grip, ok := src.GripSpace()
		if !ok {
			continue
		}
		pose, ok := frame.Pose(grip, ref)
		if !ok {
			continue
		}
		points = append(points, pose.Position)
	}

	if len(points) > 0 {
		l.Controller.FrameProximity(elapsed, points)
	}
}

// Run steps the loop at the given interval until ctx is canceled
// Convenience for headless operation; interactive front-ends call Step
// from their own event loop instead
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Step()
		}
	}
}
