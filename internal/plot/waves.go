package plot

import (
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	waveCount           = 4
	terminalWidthBackup = 80
	terminalRowsBackup  = 24
)

var waveStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC4B6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9F1C")),
}

// Waves draws a band of random sine curves. It carries no quiz state and is redrawn
// with fresh curves whenever the surface is resized.
func Waves(cols, rows int, rnd *rand.Rand, useColor bool) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	styles := make([]lipgloss.Style, waveCount)
	for i := range styles {
		styles[i] = waveStyles[i%len(waveStyles)]
	}
	c := newCanvas(cols, rows, styles)
	height := float64(c.dotHeight())
	for i := 0; i < waveCount; i++ {
		freq := 0.5 + rnd.Float64()*1.5
		amp := height * (0.2 + rnd.Float64()*0.3)
		phase := rnd.Float64() * math.Pi * 2
		offset := height * (0.25 + rnd.Float64()*0.5)
		prevX, prevY := -1, -1
		for x := 0; x < c.dotWidth(); x++ {
			y := int(math.Round(offset + math.Sin(float64(x)/20*freq+phase)*amp))
			if prevX >= 0 {
				c.line(i, prevX, prevY, x, y)
			} else {
				c.set(i, x, y)
			}
			prevX, prevY = x, y
		}
	}
	return strings.Join(c.lines(useColor), "\n")
}

// TerminalSize returns the stdout terminal size, falling back to 80x24.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return terminalWidthBackup, terminalRowsBackup
	}
	return width, height
}

// ShouldUseColor reports whether f is a terminal and NO_COLOR is unset.
func ShouldUseColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
