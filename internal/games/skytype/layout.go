package skytype

import "github.com/vovakirdan/skytype/internal/core"

// Play-area units per terminal cell. Rows are taller than columns, so a
// row covers twice the units of a column to keep motion looking even.
const (
	UnitsPerCol = 10
	UnitsPerRow = 20
)

// Screen rows reserved around the play field.
const (
	hudRows    = 2 // status line + separator
	footerRows = 2 // warship arrow + sentence glyphs
)

// Minimum screen size. The warship sprite alone is over fifty columns wide.
const (
	minScreenW = 64
	minScreenH = 16
)

// layout maps play-area units to screen cells.
type layout struct {
	fieldW int // columns
	fieldH int // rows
	top    int // first field row on screen
}

func newLayout(screenW, screenH int) layout {
	return layout{
		fieldW: max(screenW, 0),
		fieldH: max(screenH-hudRows-footerRows, 0),
		top:    hudRows,
	}
}

// units returns the play-area size in units.
func (l layout) units() (float64, float64) {
	return float64(l.fieldW * UnitsPerCol), float64(l.fieldH * UnitsPerRow)
}

// cell converts a play-area position to a screen cell.
func (l layout) cell(p core.Vec2) (int, int) {
	return int(p.X / UnitsPerCol), l.top + int(p.Y/UnitsPerRow)
}

// field returns the play field in screen cells.
func (l layout) field() core.Rect {
	return core.NewRect(0, l.top, l.fieldW, l.fieldH)
}

// inField reports whether a screen cell lies inside the play field.
func (l layout) inField(x, y int) bool {
	return l.field().Contains(x, y)
}

// footer returns the first row under the field: the warship arrow. The
// sentence glyphs are on the row below.
func (l layout) footer() int {
	return l.top + l.fieldH
}
