// Package quiz grades answers and tracks the state of a quiz session.
package quiz

import (
	"github.com/google/uuid"

	"github.com/verte-zerg/linequiz/internal/equation"
	"github.com/verte-zerg/linequiz/internal/model"
)

// State is the position of a session in its submission cycle.
type State int

const (
	// AwaitingAnswer is the resting state between submissions.
	AwaitingAnswer State = iota
	// Evaluated is entered while a submission is graded and left before Submit returns.
	Evaluated
)

func (s State) String() string {
	switch s {
	case AwaitingAnswer:
		return "awaiting-answer"
	case Evaluated:
		return "evaluated"
	default:
		return "unknown"
	}
}

// PointSource supplies targets for new rounds.
type PointSource interface {
	Point() model.Point
}

// Outcome is the result of one submission. Line is nil when the input did not parse;
// ParseErr then holds the reason. Renderers redraw with Line, feedback shows Correct.
type Outcome struct {
	Input    string
	Line     *model.Line
	ParseErr error
	Correct  bool
	Target   model.Point
	Round    int
	Tally    model.Tally
}

// Session owns the target point and running tally of one quiz run.
type Session struct {
	id     string
	target model.Point
	round  int
	tally  model.Tally
	state  State
	source PointSource
}

// NewSession starts a session at round 1 with the given target.
// source may be nil, in which case NewRound keeps the current target.
func NewSession(target model.Point, source PointSource) *Session {
	return &Session{
		id:     uuid.NewString(),
		target: target,
		round:  1,
		state:  AwaitingAnswer,
		source: source,
	}
}

// ID identifies the session in the answer journal.
func (s *Session) ID() string {
	return s.id
}

// Target returns the current round's point.
func (s *Session) Target() model.Point {
	return s.target
}

// Round returns the 1-based round number.
func (s *Session) Round() int {
	return s.round
}

// Tally returns a copy of the counters.
func (s *Session) Tally() model.Tally {
	return s.tally
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Submit grades raw answer text against the current target and updates the tally.
// Unparseable input counts as incorrect.
func (s *Session) Submit(raw string) Outcome {
	s.tally.Total++

	out := Outcome{Input: raw, Target: s.target, Round: s.round}
	line, err := equation.Parse(raw)
	if err != nil {
		out.ParseErr = err
	} else {
		out.Line = &line
	}
	out.Correct = Evaluate(s.target, out.Line)
	s.state = Evaluated

	if out.Correct {
		s.tally.Correct++
	} else {
		s.tally.Incorrect++
	}
	out.Tally = s.tally

	s.state = AwaitingAnswer
	return out
}

// NewRound replaces the target with a fresh point that differs from the current one.
// The tally carries over.
func (s *Session) NewRound() model.Point {
	if s.source == nil {
		return s.target
	}
	next := s.source.Point()
	for i := 0; i < 8 && next == s.target; i++ {
		next = s.source.Point()
	}
	s.target = next
	s.round++
	return s.target
}
