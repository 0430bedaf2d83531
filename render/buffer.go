package render

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/lixenwraith/gridgeom/core"
)

// Canvas is a fixed-size window of glyph cells over grid coordinates
// Points outside the window are clipped silently
type Canvas struct {
	origin  core.Point // grid coordinate of the top-left cell
	width   int
	height  int
	cells   []Cell
	touched []bool // background written since last Clear
}

// NewCanvas creates a canvas covering (0,0) to (width-1,height-1)
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFor(core.NewRectangle(0, 0, width, height))
}

// NewCanvasFor creates a canvas covering the grid rectangle r
func NewCanvasFor(r core.Rectangle) *Canvas {
	c := &Canvas{}
	c.Reframe(r)
	return c
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the grid rectangle the canvas covers
func (c *Canvas) Bounds() core.Rectangle {
	return core.NewRectangle(c.origin.X, c.origin.Y, c.width, c.height)
}

// Reframe moves and resizes the canvas, reallocating only if capacity is insufficient
// Content is cleared
func (c *Canvas) Reframe(r core.Rectangle) {
	size := r.Width * r.Height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
		c.touched = make([]bool, size)
	} else {
		c.cells = c.cells[:size]
		c.touched = c.touched[:size]
	}
	c.origin = r.MinExtent()
	c.width = r.Width
	c.height = r.Height
	c.Clear()
}

// Clear resets all cells to empty using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = emptyCell
	c.touched[0] = false
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

// index returns the cell index of grid point p, or -1 when clipped
func (c *Canvas) index(p core.Point) int {
	x, y := p.X-c.origin.X, p.Y-c.origin.Y
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at grid point p
func (c *Canvas) Cell(p core.Point) (Cell, bool) {
	i := c.index(p)
	if i < 0 {
		return Cell{}, false
	}
	return c.cells[i], true
}

// Set composites a cell with the specified blend mode
// A zero rune keeps the existing glyph
func (c *Canvas) Set(p core.Point, r rune, fg, bg RGB, mode BlendMode, alpha float64) bool {
	i := c.index(p)
	if i < 0 {
		return false
	}
	dst := &c.cells[i]
	if r != 0 {
		dst.Rune = r
	}
	if mode.bg() {
		dst.Bg = mode.apply(dst.Bg, bg, alpha)
		c.touched[i] = true
	}
	if mode.fg() {
		dst.Fg = mode.apply(dst.Fg, fg, alpha)
	}
	return true
}

// SetGlyph writes rune and foreground, preserving background
func (c *Canvas) SetGlyph(p core.Point, r rune, fg RGB) bool {
	i := c.index(p)
	if i < 0 {
		return false
	}
	c.cells[i].Rune = r
	c.cells[i].Fg = fg
	return true
}

// Plot draws glyph at every point of seq and returns how many landed inside the canvas
func (c *Canvas) Plot(seq iter.Seq[core.Point], glyph rune, fg RGB) int {
	n := 0
	for p := range seq {
		if c.SetGlyph(p, glyph, fg) {
			n++
		}
	}
	return n
}

// PlotArea draws glyph at every point of a
func (c *Canvas) PlotArea(a core.ReadOnlyArea, glyph rune, fg RGB) int {
	// Skip the scan when the area is entirely off-canvas
	if !c.Bounds().Intersects(a.Bounds()) {
		return 0
	}
	return c.Plot(a.All(), glyph, fg)
}

// Shade paints the background of every point of seq with color(p)
func (c *Canvas) Shade(seq iter.Seq[core.Point], color func(core.Point) RGB, mode BlendMode, alpha float64) int {
	n := 0
	for p := range seq {
		if c.Set(p, 0, RGB{}, color(p), mode&BlendMode(0x0F|flagBg), alpha) {
			n++
		}
	}
	return n
}

// Lines returns the canvas as text rows, empty cells as spaces
func (c *Canvas) Lines() []string {
	rows := make([]string, c.height)
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		sb.Reset()
		for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
			if cell.Rune == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the canvas as newline-separated rows without trailing spaces
func (c *Canvas) String() string {
	rows := c.Lines()
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(rows, "\n")
}

// WriteTo writes the text rendering, one newline-terminated row per canvas row
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, row := range c.Lines() {
		n, err := bw.WriteString(strings.TrimRight(row, " ") + "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
