// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/linequiz/internal/equation"
	"github.com/verte-zerg/linequiz/internal/journal"
	"github.com/verte-zerg/linequiz/internal/model"
	"github.com/verte-zerg/linequiz/internal/plot"
	"github.com/verte-zerg/linequiz/internal/quiz"
)

// Model implements the Bubble Tea quiz UI.
type Model struct {
	config  model.Config
	session *quiz.Session
	journal *journal.Journal
	rnd     *rand.Rand
	now     func() time.Time

	width  int
	height int
	banner string

	input    textinput.Model
	line     *model.Line
	hint     string
	feedback feedback

	outcomes []bool
	recent   []model.Attempt
}

// NewModel constructs a quiz TUI model. rnd drives the decorative banner only.
func NewModel(cfg model.Config, session *quiz.Session, j *journal.Journal, rnd *rand.Rand) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "y = mx + b"
	input.CharLimit = 0
	input.Focus()
	return &Model{
		config:  cfg,
		session: session,
		journal: j,
		rnd:     rnd,
		now:     time.Now,
		input:   input,
	}
}

// Tally returns the session counters.
func (m *Model) Tally() model.Tally {
	return m.session.Tally()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case feedbackExpiredMsg:
		m.feedback.expire(msg.seq)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyCtrlN:
			m.newRound()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	m.banner = ""
	if m.showBanner() {
		m.banner = plot.Waves(m.width, bannerRows, m.rnd, true)
	}
	cols, _ := m.plotSize()
	m.input.Width = maxInt(10, plot.Width(cols)-len(m.input.Prompt)-1)
}

func (m *Model) submit() tea.Cmd {
	out := m.session.Submit(m.input.Value())
	m.line = out.Line
	m.hint = ""
	var perr *equation.ParseError
	if errors.As(out.ParseErr, &perr) {
		m.hint = perr.Reason
	}
	m.outcomes = append(m.outcomes, out.Correct)
	if len(m.outcomes) > trendWidth {
		m.outcomes = m.outcomes[len(m.outcomes)-trendWidth:]
	}
	m.record(out)
	m.input.Reset()
	return m.feedback.show(out.Correct, m.config.FeedbackDuration())
}

func (m *Model) record(out quiz.Outcome) {
	if m.journal == nil {
		return
	}
	ctx := context.Background()
	attempt := model.Attempt{
		SessionID:   m.session.ID(),
		Round:       out.Round,
		Target:      out.Target,
		Input:       out.Input,
		Line:        out.Line,
		Correct:     out.Correct,
		SubmittedAt: m.now(),
	}
	if _, err := m.journal.Record(ctx, attempt); err != nil {
		logErrf("failed to record answer: %v\n", err)
		return
	}
	recent, err := m.journal.Recent(ctx, m.session.ID(), m.config.History)
	if err != nil {
		logErrf("failed to load recent answers: %v\n", err)
		return
	}
	m.recent = recent
}

func (m *Model) newRound() {
	m.session.NewRound()
	m.line = nil
	m.hint = ""
	m.feedback.cancel()
	m.input.Reset()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
