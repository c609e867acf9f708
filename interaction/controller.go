package interaction

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orb-garden/constant"
	"github.com/lixenwraith/orb-garden/core"
	"github.com/lixenwraith/orb-garden/hittest"
	"github.com/lixenwraith/orb-garden/scene"
	"github.com/lixenwraith/orb-garden/vmath"
)

// Player is the minimal playback interface consumed per interaction
// Satisfied by *audio.Pool
type Player interface {
	Play()
}

// Controller turns hit-test results into object mutations and sound
//
// It owns the per-object cooldown table for the continuous (proximity)
// input path. Pointer clicks are discrete events and bypass the cooldown
// entirely: human click rates cannot flood an object, and throttling them
// would make clicks feel dropped
//
// All methods run on the single frame/event goroutine, so the table and
// object state need no locking
type Controller struct {
	registry *scene.Registry
	dispatch *hittest.Dispatcher
	players  []Player
	rng      core.Rand
	palette  []colorful.Color

	// Cooldown is the minimum gap between accepted proximity triggers on
	// one object; exported for wiring, defaulted by NewController
	Cooldown time.Duration

	// ProximityRadius is the tracked-hand margin added to object scale
	ProximityRadius float64

	// OnCursor receives pointer-affordance changes from hover hit tests
	// Nil disables hover feedback
	OnCursor func(core.CursorStyle)

	// lastTrigger entries are created lazily on first interaction;
	// a missing entry means never triggered, which is always eligible
	lastTrigger map[core.ObjectID]time.Duration
}

// NewController creates a controller over the registry and pool set
// players is indexed by scene.Object.SoundIndex; short sets are legal and
// make out-of-range indices an audio no-op
func NewController(registry *scene.Registry, players []Player, rng core.Rand) *Controller {
	return &Controller{
		registry:        registry,
		dispatch:        hittest.NewDispatcher(registry),
		players:         players,
		rng:             rng,
		palette:         DefaultPalette(),
		Cooldown:        constant.ProximityCooldown,
		ProximityRadius: constant.ProximityRadius,
		lastTrigger:     make(map[core.ObjectID]time.Duration),
	}
}

// PointerClick handles a discrete click at an NDC coordinate
// The nearest hit object interacts unconditionally, no cooldown
func (c *Controller) PointerClick(ndcX, ndcY float64, cam *vmath.Camera) {
	if obj, ok := c.dispatch.QueryPointer(ndcX, ndcY, cam); ok {
		c.interact(obj)
	}
}

// PointerMove handles hover: cursor-affordance feedback only, no object
// mutation and no sound
func (c *Controller) PointerMove(ndcX, ndcY float64, cam *vmath.Camera) {
	if c.OnCursor == nil {
		return
	}
	if _, ok := c.dispatch.QueryPointer(ndcX, ndcY, cam); ok {
		c.OnCursor(core.CursorPointer)
	} else {
		c.OnCursor(core.CursorAuto)
	}
}

// FrameProximity runs the per-frame proximity pass for every tracked point
//
// now is process-relative monotonic time. Each qualifying object fires at
// most once per Cooldown window; within the window the trigger is skipped
// silently so a hand resting inside an orb does not retrigger every frame
func (c *Controller) FrameProximity(now time.Duration, points []vmath.Vec3) {
	for _, p := range points {
		for _, obj := range c.dispatch.QueryProximity(p, c.ProximityRadius) {
			last, seen := c.lastTrigger[obj.ID]
			if seen && now-last <= c.Cooldown {
				continue
			}
			c.interact(obj)
			c.lastTrigger[obj.ID] = now
		}
	}
}

// interact applies the visual mutation and triggers the object's pool
// An unresolvable sound index skips only the audio side
func (c *Controller) interact(obj *scene.Object) {
	obj.Color = c.palette[int(c.rng.Float64()*float64(len(c.palette)))]

	if obj.SoundIndex < 0 || obj.SoundIndex >= len(c.players) {
		return
	}
	if p := c.players[obj.SoundIndex]; p != nil {
		p.Play()
	}
}
