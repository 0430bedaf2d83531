package render

import "github.com/gdamore/tcell/v2"

// Draw copies the canvas onto screen with its top-left cell at (x, y)
// Cells falling outside the screen are skipped; Show is left to the caller
func (c *Canvas) Draw(screen tcell.Screen, x, y int) {
	sw, sh := screen.Size()
	for row := 0; row < c.height; row++ {
		sy := y + row
		if sy < 0 || sy >= sh {
			continue
		}
		for col := 0; col < c.width; col++ {
			sx := x + col
			if sx < 0 || sx >= sw {
				continue
			}
			cell := c.cells[row*c.width+col]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(cell.Fg.Tcell()).Background(cell.Bg.Tcell())
			screen.SetContent(sx, sy, r, nil, style)
		}
	}
}
