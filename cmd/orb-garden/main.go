package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/orb-garden/audio"
	"github.com/lixenwraith/orb-garden/constant"
	"github.com/lixenwraith/orb-garden/core"
	"github.com/lixenwraith/orb-garden/engine"
	"github.com/lixenwraith/orb-garden/interaction"
	"github.com/lixenwraith/orb-garden/scene"
	"github.com/lixenwraith/orb-garden/service"
	"github.com/lixenwraith/orb-garden/vmath"
	"github.com/lixenwraith/orb-garden/xr"
)

var (
	muteFlag     = flag.Bool("mute", false, "Disable audio output")
	poseFeedFlag = flag.String("pose-feed", "", "Websocket URL of an XR pose feed (optional)")
	assetsFlag   = flag.String("assets", "assets", "Directory containing WAV sound effects")
	logFileFlag  = flag.String("log", "", "Log file path (default: logging disabled)")
)

// soundSources maps pool index to asset file, in SoundIndex order
var soundSources = []string{
	"chime-low.wav",
	"chime-mid.wav",
	"chime-high.wav",
	"bell.wav",
}

func main() {
	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\norb-garden crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	log := logrus.New()
	log.SetOutput(io.Discard)
	if *logFileFlag != "" {
		if f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			log.SetOutput(f)
			log.SetFormatter(&logrus.JSONFormatter{})
			defer f.Close()
		}
	}

	// The terminal is the mounting surface; its absence is the one fatal
	// startup error
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Audio degrades to silent on any failure; a missing pose feed just
	// never presents. Neither service is fatal
	audioSvc := audio.NewService(log)
	poseSvc := xr.NewPoseFeedService(log)

	services := []service.Service{audioSvc, poseSvc}
	serviceArgs := map[string][]any{
		audioSvc.Name(): {*muteFlag},
		poseSvc.Name():  {*poseFeedFlag},
	}
	for _, svc := range services {
		if err := svc.Init(serviceArgs[svc.Name()]...); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to init %s service: %v\n", svc.Name(), err)
			os.Exit(1)
		}
	}
	for _, svc := range services {
		if err := svc.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start %s service: %v\n", svc.Name(), err)
			os.Exit(1)
		}
	}
	defer func() {
		for i := len(services) - 1; i >= 0; i-- {
			services[i].Stop()
		}
	}()

	assets := *assetsFlag
	cache := audio.NewBufferCache(func(id string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(assets, id))
	}, log)

	players := make([]interaction.Player, len(soundSources))
	pools := make([]*audio.Pool, len(soundSources))
	for i, src := range soundSources {
		pools[i] = audio.NewPool(cache, audioSvc.Sink(), src, audioSvc.Volume(), audioSvc.PoolSize())
		players[i] = pools[i]
	}

	registry := scene.NewRegistry(scene.DefaultLayout())
	controller := interaction.NewController(registry, players, core.TimeSeededRand())

	cursor := core.CursorAuto
	controller.OnCursor = func(style core.CursorStyle) {
		cursor = style
	}

	loop := engine.NewLoop(registry, controller, poseSvc.Session(), engine.SystemClock{})

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	cam := buildCamera(screen)
	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	var prevButtons tcell.ButtonMask
	for {
		select {
		case <-ticker.C:
			loop.Step()
			draw(screen, registry, cam, cursor, pools)

		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				cam = buildCamera(screen)

			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return
				}

			case *tcell.EventMouse:
				x, y := e.Position()
				ndcX, ndcY := toNDC(screen, x, y)
				pressed := e.Buttons()&tcell.Button1 != 0 && prevButtons&tcell.Button1 == 0
				prevButtons = e.Buttons()
				if pressed {
					controller.PointerClick(ndcX, ndcY, cam)
				} else {
					controller.PointerMove(ndcX, ndcY, cam)
				}
			}
		}
	}
}

// buildCamera places the viewer at standing height facing the orb arc
// Terminal cells are roughly twice as tall as wide, so the aspect ratio
// halves the column count
func buildCamera(screen tcell.Screen) *vmath.Camera {
	w, h := screen.Size()
	if h < 1 {
		h = 1
	}
	aspect := float64(w) / (2 * float64(h))
	return vmath.NewLookAtCamera(
		vmath.Vec3{X: 0, Y: 1.8, Z: 2},
		vmath.Vec3{X: 0, Y: 1.8, Z: -3.5},
		vmath.Vec3{Y: 1},
		math.Pi/3,
		aspect,
	)
}

// toNDC converts a cell coordinate to a normalized device coordinate
// using the screen bounds, with Y inverted (+1 at the top row)
func toNDC(screen tcell.Screen, x, y int) (float64, float64) {
	w, h := screen.Size()
	if w < 1 || h < 1 {
		return 0, 0
	}
	ndcX := 2*(float64(x)+0.5)/float64(w) - 1
	ndcY := 1 - 2*(float64(y)+0.5)/float64(h)
	return ndcX, ndcY
}

// spinGlyphs visualize accumulated rotation
var spinGlyphs = []rune{'|', '/', '-', '\\'}

// draw renders each orb as a projected disc of colored cells
func draw(screen tcell.Screen, registry *scene.Registry, cam *vmath.Camera, cursor core.CursorStyle, pools []*audio.Pool) {
	screen.Clear()
	w, h := screen.Size()

	for _, obj := range registry.Objects() {
		ndcX, ndcY, depth, ok := cam.Project(obj.Pos)
		if !ok {
			continue
		}
		cx := int((ndcX + 1) / 2 * float64(w))
		cy := int((1 - ndcY) / 2 * float64(h))

		// Apparent radius in rows from vertical FOV
		radius := obj.Scale / (depth * math.Tan(cam.FOV/2)) * float64(h) / 2
		rows := int(radius)
		if rows < 1 {
			rows = 1
		}

		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(obj.Color.R*255), int32(obj.Color.G*255), int32(obj.Color.B*255)))
		spin := spinGlyphs[int(math.Abs(obj.Rotation.Y)*2)%len(spinGlyphs)]

		for dy := -rows; dy <= rows; dy++ {
			for dx := -2 * rows; dx <= 2*rows; dx++ {
				// Cell aspect: columns count half
				if float64(dx*dx)/4+float64(dy*dy) > float64(rows*rows) {
					continue
				}
				px, py := cx+dx, cy+dy
				if px < 0 || px >= w || py < 0 || py >= h {
					continue
				}
				ch := '●'
				if dx == 0 && dy == 0 {
					ch = spin
				}
				screen.SetContent(px, py, ch, nil, style)
			}
		}
	}

	status := fmt.Sprintf(" cursor:%s ", cursor)
	for _, p := range pools {
		status += fmt.Sprintf("%s:%d ", p.Source(), p.Ready())
	}
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, statusStyle)
	}

	screen.Show()
}
