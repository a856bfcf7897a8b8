//go:build ebiten

package app

import (
	"image/color"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the side panel.
const HUDWidth = 220

const maxStepsPerFrame = 1 << 12

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	hud     *ui.HUD
	overlay *ui.Overlay

	scale         int
	paused        bool
	tickOnce      bool
	stepsPerFrame int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	palette := []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		sim:           sim,
		painter:       gp,
		palette:       palette,
		hud:           ui.NewHUD(sim, HUDWidth),
		overlay:       ui.NewOverlay(sim, scale),
		scale:         scale,
		stepsPerFrame: 1,
	}
}

// Reset restores the simulation to its initial state.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && g.stepsPerFrame < maxStepsPerFrame {
		g.stepsPerFrame *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.stepsPerFrame > 1 {
		g.stepsPerFrame /= 2
	}

	g.overlay.Update()
	g.hud.Update()

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < g.stepsPerFrame && !g.sim.Done(); i++ {
			g.sim.Step()
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
