package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/linequiz/internal/journal"
	"github.com/verte-zerg/linequiz/internal/plot"
)

const (
	bannerRows      = 3
	bannerMinHeight = 30
	trendWindow     = 5
	trendWidth      = 20
	fallbackWidth   = 80
	fallbackHeight  = 24
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	cols, rows := m.plotSize()
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		plot.Render(plot.Plane{Target: m.session.Target(), Line: m.line}, plot.Options{
			Cols:   cols,
			Rows:   rows,
			Margin: m.config.Margin,
			Color:  true,
		}),
		"",
		m.input.View(),
		m.renderStatus(),
		m.renderHistory(),
	)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}

	var sections []string
	if m.banner != "" {
		sections = append(sections, m.banner)
	}
	bodyHeight := m.height - 1 - len(sections)*bannerRows
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	sections = append(sections,
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content),
		lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer),
	)
	return strings.Join(sections, "\n")
}

func (m *Model) showBanner() bool {
	return m.config.Banner && m.width > 0 && m.height >= bannerMinHeight
}

// chromeRows counts the rows around the plot: title, two spacers, input, status,
// history and footer, plus the banner when shown.
func (m *Model) chromeRows() int {
	rows := 6 + m.config.History
	if m.showBanner() {
		rows += bannerRows
	}
	return rows
}

func (m *Model) plotSize() (cols, rows int) {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	return plot.FitSize(width, height-m.chromeRows())
}

func (m *Model) renderTitle() string {
	p := journal.FormatPoint(m.session.Target())
	return titleStyle.Render(fmt.Sprintf("Round %d  Find a line y = mx + b through %s", m.session.Round(), p))
}

func (m *Model) renderStatus() string {
	if overlay := m.feedback.view(); overlay != "" {
		if m.hint != "" && !m.feedback.correct {
			return overlay + " " + hintStyle.Render(m.hint)
		}
		return overlay
	}
	return ""
}

// renderHistory always fills config.History rows so the layout does not jump.
func (m *Model) renderHistory() string {
	if m.config.History <= 0 {
		return ""
	}
	now := m.now()
	rows := make([]string, m.config.History)
	for i := range rows {
		if i < len(m.recent) {
			rows[i] = historyStyle.Render(journal.FormatAttempt(m.recent[i], now))
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderFooter() string {
	t := m.session.Tally()
	segments := []string{fmt.Sprintf("Correct %d · Incorrect %d · Total %d", t.Correct, t.Incorrect, t.Total)}
	if len(m.outcomes) > 0 {
		trend := journal.Sparkline(journal.MovingAverage(journal.Outcomes(m.outcomes), trendWindow))
		segments = append(segments, fmt.Sprintf("Trend [%s]", trend))
	}
	segments = append(segments, "enter submit · ctrl+n new point · esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}
