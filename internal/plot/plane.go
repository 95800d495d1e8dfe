package plot

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/linequiz/internal/coords"
	"github.com/verte-zerg/linequiz/internal/model"
)

const (
	minCols = 10
	minRows = 5

	labelSeparator = " "
	// Grid lattice dots are skipped when neighbouring integers sit closer than this.
	minGridSpacing = 3
)

// Layers in color priority order.
const (
	layerPoint = iota
	layerLine
	layerAxis
	layerGrid
	layerCount
)

var (
	pointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9F1C"))
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC4B6"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	gridStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	axisLabels = []float64{model.AxisMax, 0, model.AxisMin}
)

// Plane holds what one frame of the quiz plot shows. Line may be nil.
type Plane struct {
	Target model.Point
	Line   *model.Line
}

// Options sizes and styles a rendered plane. Cols and Rows count terminal cells of the
// plot area only; Margin is in dots.
type Options struct {
	Cols   int
	Rows   int
	Margin int
	Color  bool
}

// Render draws the plane with y labels on the left and an x label row underneath.
func Render(p Plane, opts Options) string {
	c, v := draw(p, opts)
	labelWidth := yLabelWidth()
	plotLines := c.lines(opts.Color)

	yLabels := map[int]string{}
	for _, val := range axisLabels {
		row := int(math.Round(v.Y(val))) / 4
		yLabels[row] = formatLabel(val)
	}

	out := make([]string, 0, len(plotLines)+1)
	for i, line := range plotLines {
		label := padLeft(yLabels[i], labelWidth)
		if opts.Color {
			label = labelStyle.Render(label)
		}
		out = append(out, label+labelSeparator+line)
	}
	xRow := xLabelRow(v, labelWidth+runewidth.StringWidth(labelSeparator), c.cols)
	if opts.Color {
		xRow = labelStyle.Render(xRow)
	}
	out = append(out, xRow)
	return strings.Join(out, "\n")
}

// Width returns the rendered width of a plot with cols plot cells.
func Width(cols int) int {
	if cols < minCols {
		cols = minCols
	}
	return yLabelWidth() + runewidth.StringWidth(labelSeparator) + cols
}

// Height returns the rendered height of a plot with rows plot cells.
func Height(rows int) int {
	if rows < minRows {
		rows = minRows
	}
	return rows + 1
}

// FitSize returns the largest square-looking plot area that fits in width x height
// terminal cells, labels included. Braille dots are roughly square when the cell
// aspect is 1:2, so a square plane needs twice as many columns as rows.
func FitSize(width, height int) (cols, rows int) {
	rows = height - 1
	cols = width - yLabelWidth() - runewidth.StringWidth(labelSeparator)
	if cols > rows*2 {
		cols = rows * 2
	} else {
		rows = cols / 2
	}
	if rows < minRows {
		rows = minRows
	}
	if cols < minCols {
		cols = minCols
	}
	return cols, rows
}

func draw(p Plane, opts Options) (*canvas, coords.Viewport) {
	cols, rows := opts.Cols, opts.Rows
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	styles := make([]lipgloss.Style, layerCount)
	styles[layerPoint] = pointStyle
	styles[layerLine] = lineStyle
	styles[layerAxis] = axisStyle
	styles[layerGrid] = gridStyle
	c := newCanvas(cols, rows, styles)

	v := coords.Viewport{
		Min:    model.AxisMin,
		Max:    model.AxisMax,
		Width:  float64(c.dotWidth() - 1),
		Height: float64(c.dotHeight() - 1),
		Margin: float64(opts.Margin),
	}
	if v.Margin < 0 || !v.Drawable() {
		v.Margin = 0
	}

	drawGrid(c, v)
	drawAxes(c, v)
	drawTarget(c, v, p.Target)
	if p.Line != nil {
		drawUserLine(c, v, *p.Line)
	}
	return c, v
}

func drawGrid(c *canvas, v coords.Viewport) {
	if v.X(1)-v.X(0) < minGridSpacing || v.Y(0)-v.Y(1) < minGridSpacing {
		return
	}
	for i := int(v.Min); i <= int(v.Max); i++ {
		if i == 0 {
			continue
		}
		for j := int(v.Min); j <= int(v.Max); j++ {
			if j == 0 {
				continue
			}
			c.set(layerGrid, round(v.X(float64(i))), round(v.Y(float64(j))))
		}
	}
}

func drawAxes(c *canvas, v coords.Viewport) {
	x0, y0 := round(v.X(0)), round(v.Y(0))
	c.line(layerAxis, round(v.X(v.Min)), y0, round(v.X(v.Max)), y0)
	c.line(layerAxis, x0, round(v.Y(v.Min)), x0, round(v.Y(v.Max)))
	c.blob(layerAxis, x0, y0, 1)
}

func drawTarget(c *canvas, v coords.Viewport, p model.Point) {
	px, py := v.X(p.X), v.Y(p.Y)
	if !v.Inside(px, py) {
		return
	}
	c.blob(layerPoint, round(px), round(py), 1)
}

// drawUserLine draws the part of the line that lies inside the logical square.
func drawUserLine(c *canvas, v coords.Viewport, l model.Line) {
	lo, hi, ok := clipLine(l, v.Min, v.Max)
	if !ok {
		return
	}
	c.line(layerLine, round(v.X(lo)), round(v.Y(l.At(lo))), round(v.X(hi)), round(v.Y(l.At(hi))))
}

// clipLine returns the x interval over which min <= l.At(x) <= max for x in [min, max].
func clipLine(l model.Line, minVal, maxVal float64) (lo, hi float64, ok bool) {
	if math.IsNaN(l.M) || math.IsNaN(l.B) || math.IsInf(l.M, 0) || math.IsInf(l.B, 0) {
		return 0, 0, false
	}
	if l.M == 0 {
		if l.B < minVal || l.B > maxVal {
			return 0, 0, false
		}
		return minVal, maxVal, true
	}
	xa := (minVal - l.B) / l.M
	xb := (maxVal - l.B) / l.M
	lo = math.Max(minVal, math.Min(xa, xb))
	hi = math.Min(maxVal, math.Max(xa, xb))
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

func xLabelRow(v coords.Viewport, offset, cols int) string {
	row := []rune(strings.Repeat(" ", offset+cols))
	for _, val := range axisLabels {
		label := formatLabel(val)
		width := runewidth.StringWidth(label)
		start := offset + round(v.X(val))/2 - width/2
		if start+width > len(row) {
			start = len(row) - width
		}
		if start < offset {
			start = offset
		}
		for i, r := range label {
			if start+i < len(row) {
				row[start+i] = r
			}
		}
	}
	return strings.TrimRight(string(row), " ")
}

func yLabelWidth() int {
	width := 0
	for _, val := range axisLabels {
		if w := runewidth.StringWidth(formatLabel(val)); w > width {
			width = w
		}
	}
	return width
}

func formatLabel(v float64) string {
	return strconv.Itoa(int(v))
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

func round(v float64) int {
	return int(math.Round(v))
}
