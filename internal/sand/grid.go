package sand

import (
	"errors"
	"fmt"
	"strings"

	"sandfall/internal/core"
)

// ErrSourceBlocked is returned when a rock covers the sand source.
var ErrSourceBlocked = errors.New("rock covers the sand source")

// Grid is a dense map of cells addressed by world coordinates. Its shape is
// fixed at construction; only cell contents change afterwards.
type Grid struct {
	cells  *core.ByteGrid
	origin core.Pt
	source core.Pt
	mode   Mode
	floorY int
}

// Build rasterizes the scan into a grid sized for cfg.Mode.
//
// In bounded mode the grid spans the bounding box of every waypoint and the
// source. In floor mode a rock floor is added two rows below the lowest
// waypoint. A unit can drift at most one column per row it falls, so the
// floor only needs to reach floorY-source.Y columns either side of the
// source for no unit to ever leave the grid.
func Build(scan Scan, cfg Config) (*Grid, error) {
	src := cfg.Source()
	lo, hi := src, src
	for _, p := range scan.Points() {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}

	floorY := 0
	if cfg.Mode == ModeFloor {
		floorY = hi.Y + 2
		spread := floorY - src.Y
		lo.X = min(lo.X, src.X-spread)
		hi.X = max(hi.X, src.X+spread)
		hi.Y = floorY
	}

	g := &Grid{
		cells:  core.NewByteGrid(hi.X-lo.X+1, hi.Y-lo.Y+1),
		origin: lo,
		source: src,
		mode:   cfg.Mode,
		floorY: floorY,
	}
	for _, path := range scan.Paths {
		g.rasterize(path)
	}
	if cfg.Mode == ModeFloor {
		for x := lo.X; x <= hi.X; x++ {
			g.set(core.Pt{X: x, Y: floorY}, Rock)
		}
	}
	if g.At(src) == Rock {
		return nil, fmt.Errorf("source %v: %w", src, ErrSourceBlocked)
	}
	g.set(src, Source)
	return g, nil
}

// rasterize marks every cell of path as rock, both endpoints of each segment
// included. A segment is drawn as a vertical run at the first waypoint's
// column followed by a horizontal run at the second waypoint's row.
func (g *Grid) rasterize(path Path) {
	if len(path) == 1 {
		g.set(path[0], Rock)
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			g.set(core.Pt{X: a.X, Y: y}, Rock)
		}
		for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
			g.set(core.Pt{X: x, Y: b.Y}, Rock)
		}
	}
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p core.Pt) bool {
	l := p.Sub(g.origin)
	return g.cells.InBounds(l.X, l.Y)
}

// At returns the cell at p, which must be in bounds.
func (g *Grid) At(p core.Pt) Cell {
	l := p.Sub(g.origin)
	return Cell(g.cells.At(l.X, l.Y))
}

func (g *Grid) set(p core.Pt, c Cell) {
	l := p.Sub(g.origin)
	g.cells.Set(l.X, l.Y, uint8(c))
}

func (g *Grid) index(p core.Pt) int {
	l := p.Sub(g.origin)
	return g.cells.Index(l.X, l.Y)
}

// Bounds returns the top-left and bottom-right corners in world coordinates.
func (g *Grid) Bounds() (lo, hi core.Pt) {
	return g.origin, g.origin.Add(core.Pt{X: g.cells.W - 1, Y: g.cells.H - 1})
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cells.W, H: g.cells.H} }

// Source returns the spawn position.
func (g *Grid) Source() core.Pt { return g.source }

// Mode returns the mode the grid was built for.
func (g *Grid) Mode() Mode { return g.mode }

// Floor returns the floor row in floor mode.
func (g *Grid) Floor() (int, bool) { return g.floorY, g.mode == ModeFloor }

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int { return g.cells.Count(uint8(c)) }

// Cells exposes the row-major cell tags.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// String draws the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cells.W + 1) * g.cells.H)
	cells := g.cells.Cells()
	for y := 0; y < g.cells.H; y++ {
		for _, c := range cells[y*g.cells.W : (y+1)*g.cells.W] {
			b.WriteByte(Cell(c).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
