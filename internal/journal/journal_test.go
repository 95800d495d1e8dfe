package journal

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/linequiz/internal/model"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open("")
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() {
		_ = j.Close()
	})
	return j
}

func record(t *testing.T, j *Journal, a model.Attempt) {
	t.Helper()
	if _, err := j.Record(context.Background(), a); err != nil {
		t.Fatalf("record attempt: %v", err)
	}
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	start := time.Unix(1_700_000_000, 0).UTC()
	target := model.Point{X: 3, Y: 7}

	record(t, j, model.Attempt{SessionID: "s1", Round: 1, Target: target, Input: "garbage", SubmittedAt: start})
	record(t, j, model.Attempt{SessionID: "s1", Round: 1, Target: target, Input: "y=x+5", Line: &model.Line{M: 1, B: 5}, SubmittedAt: start.Add(time.Second)})
	record(t, j, model.Attempt{SessionID: "s1", Round: 1, Target: target, Input: "y=2x+1", Line: &model.Line{M: 2, B: 1}, Correct: true, SubmittedAt: start.Add(2 * time.Second)})
	record(t, j, model.Attempt{SessionID: "other", Round: 1, Target: target, Input: "y=x", SubmittedAt: start})

	recent, err := j.Recent(context.Background(), "s1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(recent))
	}
	if recent[0].Input != "y=2x+1" || !recent[0].Correct {
		t.Fatalf("expected newest correct attempt first, got %+v", recent[0])
	}
	if recent[0].Line == nil || *recent[0].Line != (model.Line{M: 2, B: 1}) {
		t.Fatalf("expected parsed line restored, got %+v", recent[0].Line)
	}
	if !recent[0].SubmittedAt.Equal(start.Add(2 * time.Second)) {
		t.Fatalf("unexpected timestamp %v", recent[0].SubmittedAt)
	}

	all, err := j.Recent(context.Background(), "s1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 attempts for session, got %d", len(all))
	}
	if all[2].Line != nil {
		t.Fatalf("expected unparsed attempt to have no line")
	}
}

func TestRounds(t *testing.T) {
	j := openTestJournal(t)
	now := time.Now()
	first := model.Point{X: 3, Y: 7}
	second := model.Point{X: -2, Y: 4}
	record(t, j, model.Attempt{SessionID: "s", Round: 1, Target: first, Input: "y=x", SubmittedAt: now})
	record(t, j, model.Attempt{SessionID: "s", Round: 1, Target: first, Input: "y=2x+1", Correct: true, SubmittedAt: now})
	record(t, j, model.Attempt{SessionID: "s", Round: 1, Target: first, Input: "y=x+4", Correct: true, SubmittedAt: now})
	record(t, j, model.Attempt{SessionID: "s", Round: 2, Target: second, Input: "nope", SubmittedAt: now})

	rounds, err := j.Rounds(context.Background(), "s")
	if err != nil {
		t.Fatalf("rounds: %v", err)
	}
	want := []model.RoundSummary{
		{Round: 1, Target: first, Attempts: 3, Correct: 2, FirstCorrect: 2},
		{Round: 2, Target: second, Attempts: 1, Correct: 0, FirstCorrect: 0},
	}
	if len(rounds) != len(want) {
		t.Fatalf("expected %d rounds, got %d", len(want), len(rounds))
	}
	for i := range want {
		if rounds[i] != want[i] {
			t.Fatalf("round %d: expected %+v, got %+v", i, want[i], rounds[i])
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("open file journal: %v", err)
	}
	defer func() {
		_ = j.Close()
	}()
	record(t, j, model.Attempt{SessionID: "s", Round: 1, Input: "y=x", SubmittedAt: time.Now()})
	recent, err := j.Recent(context.Background(), "s", 1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("expected one attempt, got %d (%v)", len(recent), err)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	tally := model.Tally{Correct: 2, Incorrect: 2, Total: 4}
	rounds := []model.RoundSummary{
		{Round: 1, Target: model.Point{X: 3, Y: 7}, Attempts: 3, Correct: 2, FirstCorrect: 2},
		{Round: 2, Target: model.Point{X: -2, Y: 4}, Attempts: 1},
	}
	if err := RenderSummary(&buf, tally, rounds); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Answers: 4", "Accuracy: 50.0%", "(3, 7)", "(-2, 4)", "2nd try", "Solved on"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSummary(&buf, model.Tally{}, nil); err != nil {
		t.Fatalf("render empty summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No answers submitted.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestFormatAttempt(t *testing.T) {
	now := time.Unix(1_700_000_100, 0)
	a := model.Attempt{
		Target:      model.Point{X: 3, Y: 7},
		Input:       "y = 2x + 1",
		Line:        &model.Line{M: 2, B: 1},
		Correct:     true,
		SubmittedAt: now.Add(-2 * time.Minute),
	}
	got := FormatAttempt(a, now)
	if got != "v y=2x+1  (3, 7)  2 minutes ago" {
		t.Fatalf("unexpected row %q", got)
	}
	a.Line = nil
	a.Correct = false
	a.Input = "  "
	if got := FormatAttempt(a, now); !strings.HasPrefix(got, "x (empty)") {
		t.Fatalf("unexpected row for empty input %q", got)
	}
}

func TestSparkline(t *testing.T) {
	values := MovingAverage(Outcomes([]bool{false, true, true, true}), 2)
	if got := Sparkline(values); got != " +@@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}
