package sand

// Cell tags the content of one grid position. Air is the zero value.
type Cell uint8

const (
	Air Cell = iota
	Rock
	Sand
	Source
)

// Glyph returns the character used when drawing the cell.
func (c Cell) Glyph() byte {
	switch c {
	case Rock:
		return '#'
	case Sand:
		return 'o'
	case Source:
		return '+'
	default:
		return '.'
	}
}

// open reports whether a falling unit may enter a cell holding c.
func open(c Cell) bool { return c == Air || c == Source }
