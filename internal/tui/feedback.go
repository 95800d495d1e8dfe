package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	correctFeedbackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#011627")).
				Background(lipgloss.Color("#2EC4B6")).
				Bold(true).
				Padding(0, 2)
	incorrectFeedbackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Background(lipgloss.Color("#FF3232")).
				Bold(true).
				Padding(0, 2)
)

type feedbackExpiredMsg struct {
	seq int
}

// feedback is the transient verdict overlay. Each show bumps seq, and only the
// timer carrying the current seq may hide it.
type feedback struct {
	visible bool
	correct bool
	seq     int
}

func (f *feedback) show(correct bool, d time.Duration) tea.Cmd {
	f.seq++
	f.visible = true
	f.correct = correct
	seq := f.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{seq: seq}
	})
}

func (f *feedback) expire(seq int) {
	if seq != f.seq {
		return
	}
	f.visible = false
}

// cancel hides the overlay and invalidates any pending timer.
func (f *feedback) cancel() {
	f.seq++
	f.visible = false
}

func (f *feedback) view() string {
	if !f.visible {
		return ""
	}
	if f.correct {
		return correctFeedbackStyle.Render("Correct  :)  :)")
	}
	return incorrectFeedbackStyle.Render("Incorrect  :(  :(")
}
