package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/linequiz/internal/journal"
	"github.com/verte-zerg/linequiz/internal/model"
	"github.com/verte-zerg/linequiz/internal/quiz"
)

type fixedPoints struct {
	points []model.Point
	next   int
}

func (f *fixedPoints) Point() model.Point {
	p := f.points[f.next%len(f.points)]
	f.next++
	return p
}

func newTestModel(t *testing.T, source quiz.PointSource) *Model {
	t.Helper()
	j, err := journal.Open("")
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() {
		_ = j.Close()
	})
	cfg := model.Config{
		Target:     model.Point{X: 3, Y: 7},
		Margin:     4,
		FeedbackMs: 1200,
		History:    3,
	}
	session := quiz.NewSession(cfg.Target, source)
	return NewModel(cfg, session, j, rand.New(rand.NewSource(1)))
}

func answer(m *Model, text string) tea.Cmd {
	m.input.SetValue(text)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestSubmitUpdatesTally(t *testing.T) {
	m := newTestModel(t, nil)
	if cmd := answer(m, "y = 2x + 1"); cmd == nil {
		t.Fatalf("expected feedback timer command")
	}
	if got := m.Tally(); got != (model.Tally{Correct: 1, Total: 1}) {
		t.Fatalf("unexpected tally %+v", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared, got %q", m.input.Value())
	}
	if !m.feedback.visible || !m.feedback.correct {
		t.Fatalf("expected correct feedback shown")
	}
	if m.line == nil || *m.line != (model.Line{M: 2, B: 1}) {
		t.Fatalf("expected parsed line kept for plotting, got %+v", m.line)
	}

	answer(m, "y = x + 5")
	answer(m, "hello")
	if got := m.Tally(); got != (model.Tally{Correct: 1, Incorrect: 2, Total: 3}) {
		t.Fatalf("unexpected tally %+v", got)
	}
	if m.line != nil {
		t.Fatalf("expected no line after unparseable answer")
	}
	if m.hint == "" {
		t.Fatalf("expected parse hint")
	}
	if len(m.recent) != 3 || m.recent[0].Input != "hello" {
		t.Fatalf("expected newest attempt first, got %+v", m.recent)
	}
}

func TestStaleFeedbackTimerIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	answer(m, "y=x")
	first := m.feedback.seq
	answer(m, "y=2x+1")

	m.Update(feedbackExpiredMsg{seq: first})
	if !m.feedback.visible || !m.feedback.correct {
		t.Fatalf("stale timer hid the newer feedback")
	}
	m.Update(feedbackExpiredMsg{seq: m.feedback.seq})
	if m.feedback.visible {
		t.Fatalf("expected feedback hidden by its own timer")
	}
}

func TestNewRoundClearsLine(t *testing.T) {
	src := &fixedPoints{points: []model.Point{{X: -2, Y: 4}}}
	m := newTestModel(t, src)
	answer(m, "y=2x+1")
	seq := m.feedback.seq

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.session.Round() != 2 {
		t.Fatalf("expected round 2, got %d", m.session.Round())
	}
	if m.session.Target() != (model.Point{X: -2, Y: 4}) {
		t.Fatalf("unexpected target %+v", m.session.Target())
	}
	if m.line != nil || m.feedback.visible {
		t.Fatalf("expected cleared line and feedback")
	}
	m.Update(feedbackExpiredMsg{seq: seq})
	if m.feedback.visible {
		t.Fatalf("expected feedback to stay hidden")
	}
	if got := m.Tally(); got.Total != 1 {
		t.Fatalf("expected tally kept across rounds, got %+v", got)
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel(t, nil)
	answer(m, "y=2x+1")
	answer(m, "y=x")
	out := m.renderFooter()
	if !containsAll(out, []string{"Correct 1", "Incorrect 1", "Total 2", "Trend [", "ctrl+n"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	answer(m, "y=2x+1")
	out := m.View()
	if !containsAll(out, []string{"Round 1", "(3, 7)", "Correct", "y=2x+1"}) {
		t.Fatalf("view missing expected content:\n%s", out)
	}
	if lines := strings.Count(out, "\n") + 1; lines > 40 {
		t.Fatalf("view taller than terminal: %d lines", lines)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, nil)
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %v", key)
		}
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestTrendKeepsRecentOutcomes(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < trendWidth+5; i++ {
		answer(m, "y=x")
	}
	answer(m, "y=2x+1")
	if len(m.outcomes) != trendWidth {
		t.Fatalf("expected %d outcomes kept, got %d", trendWidth, len(m.outcomes))
	}
	if !m.outcomes[len(m.outcomes)-1] {
		t.Fatalf("expected newest outcome last")
	}
	if got := m.Tally().Total; got != trendWidth+6 {
		t.Fatalf("expected tally unaffected by trimming, got %d", got)
	}
}

func TestResizeKeepsTargetSequence(t *testing.T) {
	next := func(resize bool) model.Point {
		cfg := model.Config{Target: model.Point{X: 3, Y: 7}, Margin: 4, FeedbackMs: 1200, History: 3, Banner: true}
		session := quiz.NewSession(cfg.Target, quiz.NewGenerator(42))
		m := NewModel(cfg, session, nil, rand.New(rand.NewSource(43)))
		if resize {
			m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
			if m.banner == "" {
				t.Fatalf("expected banner drawn on resize")
			}
		}
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
		return m.session.Target()
	}
	if plain, resized := next(false), next(true); plain != resized {
		t.Fatalf("resize changed next target: %+v vs %+v", plain, resized)
	}
}
