package render

import (
	"bufio"
	"io"

	"sandfall/internal/core"
)

const (
	ansiClear = "\x1b[2J"
	ansiHome  = "\x1b[1;1H"
)

// Terminal draws frames of a grid as text, redrawing in place.
type Terminal struct {
	w       *bufio.Writer
	glyphs  []byte
	started bool
}

// NewTerminal returns a renderer writing to w. glyphs maps each cell value to
// the character drawn for it; unknown values are drawn as '?'.
func NewTerminal(w io.Writer, glyphs []byte) *Terminal {
	return &Terminal{w: bufio.NewWriter(w), glyphs: glyphs}
}

// Frame draws the cells of a grid of the given size. The screen is cleared
// before the first frame; later frames overwrite it from the top-left corner.
func (t *Terminal) Frame(size core.Size, cells []uint8) error {
	if !t.started {
		t.w.WriteString(ansiClear)
		t.started = true
	}
	t.w.WriteString(ansiHome)
	for y := 0; y < size.H; y++ {
		for _, c := range cells[y*size.W : (y+1)*size.W] {
			t.w.WriteByte(t.glyph(c))
		}
		t.w.WriteByte('\n')
	}
	return t.w.Flush()
}

func (t *Terminal) glyph(c uint8) byte {
	if int(c) < len(t.glyphs) {
		return t.glyphs[c]
	}
	return '?'
}
