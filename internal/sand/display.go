package sand

import "image/color"

// displayFalling marks an in-flight unit in the display buffer.
const displayFalling = uint8(Source) + 1

var sandPalette = []color.RGBA{
	Air:            {R: 12, G: 12, B: 18, A: 255},
	Rock:           {R: 120, G: 120, B: 128, A: 255},
	Sand:           {R: 218, G: 184, B: 112, A: 255},
	Source:         {R: 230, G: 70, B: 50, A: 255},
	displayFalling: {R: 255, G: 236, B: 150, A: 255},
}

// Palette exposes the color palette used for rendering the display buffer.
func (s *Sim) Palette() []color.RGBA { return sandPalette }

// Cells returns the grid with in-flight units drawn on top.
func (s *Sim) Cells() []uint8 {
	copy(s.display, s.grid.Cells())
	for _, p := range s.active {
		s.display[s.grid.index(p)] = displayFalling
	}
	return s.display
}

// Glyphs is the character for each display value, indexed like Palette.
var Glyphs = []byte{
	Air:            Air.Glyph(),
	Rock:           Rock.Glyph(),
	Sand:           Sand.Glyph(),
	Source:         Source.Glyph(),
	displayFalling: '~',
}
