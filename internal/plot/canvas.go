// Package plot draws the quiz plane and decorative curves on Braille canvases.
package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a stack of Braille layers sharing one cell grid. Each terminal cell holds
// a 2x4 block of dots, so a canvas of cols x rows cells is (2*cols) x (4*rows) dots.
// Earlier layers win when choosing a cell's color.
type canvas struct {
	cols   int
	rows   int
	layers [][][]uint8
	styles []lipgloss.Style
}

func newCanvas(cols, rows int, styles []lipgloss.Style) *canvas {
	c := &canvas{cols: cols, rows: rows, styles: styles}
	c.layers = make([][][]uint8, len(styles))
	for i := range c.layers {
		c.layers[i] = makeCells(rows, cols)
	}
	return c
}

// dotWidth returns the number of dot columns.
func (c *canvas) dotWidth() int {
	return c.cols * 2
}

// dotHeight returns the number of dot rows.
func (c *canvas) dotHeight() int {
	return c.rows * 4
}

func (c *canvas) set(layer, x, y int) {
	setBrailleDot(c.layers[layer], x, y)
}

func (c *canvas) line(layer, x0, y0, x1, y1 int) {
	drawLine(x0, y0, x1, y1, func(x, y int) {
		c.set(layer, x, y)
	})
}

// blob fills a (2r+1) square of dots centered on x, y.
func (c *canvas) blob(layer, x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c.set(layer, x+dx, y+dy)
		}
	}
}

func (c *canvas) lines(useColor bool) []string {
	out := make([]string, 0, c.rows)
	for y := 0; y < c.rows; y++ {
		var row strings.Builder
		for x := 0; x < c.cols; x++ {
			mask, layer := composeCell(c.layers, x, y)
			ch := string(brailleFromMask(mask))
			if useColor && layer >= 0 {
				ch = c.styles[layer].Render(ch)
			}
			row.WriteString(ch)
		}
		out = append(out, row.String())
	}
	return out
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func composeCell(layers [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	layerIdx := -1
	for i, cells := range layers {
		if y < 0 || y >= len(cells) {
			continue
		}
		if x < 0 || x >= len(cells[y]) {
			continue
		}
		cellMask := cells[y][x]
		if cellMask == 0 {
			continue
		}
		if layerIdx == -1 {
			layerIdx = i
		}
		mask |= cellMask
	}
	return mask, layerIdx
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if y < 0 || x < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(cells) {
		return
	}
	if cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
