package render

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Image renders one pixel per cell and upscales by scale with nearest-neighbor sampling
// Glyph cells take their foreground color, others their background
func (c *Canvas) Image(scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			col := cell.Bg
			if cell.Rune != 0 && cell.Rune != ' ' {
				col = cell.Fg
			}
			src.SetRGBA(x, y, col.RGBA())
		}
	}
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width*scale, c.height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes the scaled canvas image as PNG
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	return png.Encode(w, c.Image(scale))
}
