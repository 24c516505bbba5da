//go:build ebiten

// Package app adapts the simulation loop to an ebiten window. It is the thin
// presentation collaborator: it owns no simulation state beyond its own
// Settings mirror and talks to the engine purely through messages.
package app

import (
	"fmt"
	"image/color"
	"time"

	"smarticles/internal/render"
	"smarticles/internal/sim"
	"smarticles/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minZoom    = 0.1
	maxZoom    = 10.0
	zoomFactor = 0.02
)

// Game drives the simulation loop from the render thread and draws the most
// recent published frame.
type Game struct {
	loop     *sim.Loop
	settings sim.Settings
	seed     string
	running  bool

	frame   sim.Frame
	elapsed time.Duration

	painter *render.FramePainter
	palette []color.RGBA

	width  int
	height int

	zoom      float32
	pan       vec.Vec2
	dragging  bool
	dragStart vec.Vec2
	panStart  vec.Vec2
}

// New builds the game shell, applies the initial seed and asks the loop for a
// first spawn so the window is not empty.
func New(loop *sim.Loop, cfg *Config) *Game {
	g := &Game{
		loop:     loop,
		settings: sim.DefaultSettings(),
		seed:     cfg.Seed,
		painter:  render.NewFramePainter(),
		palette:  render.ClassPalette(sim.MaxClasses),
		width:    cfg.Width,
		height:   cfg.Height,
		zoom:     float32(cfg.Zoom),
	}
	g.settings.ApplySeed(g.seed)
	g.pushSettings()
	g.loop.Send(sim.Spawn{})
	return g
}

// pushSettings reconciles the simulation side with the local settings mirror.
func (g *Game) pushSettings() {
	g.loop.Send(sim.ParamsUpdate{Params: g.settings.Params})
	g.loop.Send(sim.ClassCountUpdate{Count: g.settings.ClassCount})
	g.loop.Send(sim.ParticleCountsUpdate{Counts: g.settings.ParticleCounts})
	g.loop.Send(sim.WorldRadiusUpdate{Radius: g.settings.WorldRadius})
}

// Update handles input and consumes published frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.running {
			g.loop.Send(sim.Pause{})
		} else {
			g.loop.Send(sim.Play{})
		}
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Send(sim.Spawn{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed = sim.RandomSeedPhrase()
		g.settings.ApplySeed(g.seed)
		g.pushSettings()
		g.loop.Send(sim.Spawn{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		// The seed field doubles as a save string.
		g.seed = g.settings.Export()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.loop.Send(sim.Reset{})
		g.settings = sim.DefaultSettings()
		g.seed = ""
		g.running = false
	}

	g.handleView()
	return g.drainFrames()
}

// handleView applies wheel zoom and left-drag panning.
func (g *Game) handleView() {
	_, wy := ebiten.Wheel()
	g.zoom += float32(wy) * zoomFactor
	if g.zoom < minZoom {
		g.zoom = minZoom
	}
	if g.zoom > maxZoom {
		g.zoom = maxZoom
	}

	mx, my := ebiten.CursorPosition()
	cursor := vec.New(float32(mx), float32(my))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.dragging {
			g.dragging = true
			g.dragStart = cursor
			g.panStart = g.pan
		}
		g.pan = g.panStart.Add(cursor.Sub(g.dragStart).Scale(1 / g.zoom))
	} else {
		g.dragging = false
	}
}

// drainFrames keeps only the newest available frame.
func (g *Game) drainFrames() error {
	for {
		select {
		case f, ok := <-g.loop.Frames():
			if !ok {
				return ebiten.Termination
			}
			g.frame = f
			if f.Stepped {
				g.elapsed = f.Elapsed
			}
		default:
			return nil
		}
	}
}

// Draw renders the newest frame plus a small status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	center := vec.New(float32(b.Dx())/2, float32(b.Dy())/2).Add(g.pan.Scale(g.zoom))
	g.painter.Draw(screen, g.frame.Positions, g.palette, g.settings.WorldRadius, center, g.zoom)

	state := "paused"
	if g.running {
		state = "running"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"seed: %s\nstate: %s  tick: %dms\n[space] play/pause [s] spawn [r] randomize [e] export seed [x] reset [q] quit",
		g.seed, state, g.elapsed.Milliseconds()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
