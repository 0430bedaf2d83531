package render

// Cell is one glyph position of a Canvas
// Rune 0 marks an empty cell, rendered as a space
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// emptyCell is the cleared state
var emptyCell = Cell{Rune: 0, Fg: RgbForeground, Bg: RgbBackground}
