//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status banner over the simulation once it halts.
type Overlay struct {
	sim    core.Sim
	scale  int
	hidden bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the banner with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.hidden = !o.hidden
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden || !o.sim.Done() {
		return
	}
	size := o.sim.Size()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	width := size.W * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), bannerHeight)
	op.ColorScale.Scale(0, 0, 0, 0.7)
	screen.DrawImage(o.pixel, op)

	msg := "halted"
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		outcome, _ := snap.Lookup("outcome")
		resting, _ := snap.Lookup("resting")
		msg = outcome.Value + ": " + resting.Value + " resting"
	}
	text.Draw(screen, msg, basicfont.Face7x13, bannerPadding, bannerBaseline, color.White)
}

const (
	bannerHeight   = 22
	bannerPadding  = 6
	bannerBaseline = 15
)
