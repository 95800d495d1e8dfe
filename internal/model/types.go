// Package model defines shared data structures.
package model

import "time"

// Logical axis bounds shared by both axes of the quiz plane.
const (
	AxisMin = -10.0
	AxisMax = 10.0
)

// Point is a coordinate in logical space.
type Point struct {
	X float64
	Y float64
}

// Line is a slope-intercept line y = M*x + B.
type Line struct {
	M float64
	B float64
}

// At returns the y value of the line at x.
func (l Line) At(x float64) float64 {
	return l.M*x + l.B
}

// Tally counts quiz outcomes. Total always equals Correct + Incorrect.
type Tally struct {
	Correct   int
	Incorrect int
	Total     int
}

// Accuracy returns the fraction of correct answers, or 0 before any answer.
func (t Tally) Accuracy() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// Config defines quiz and display settings.
type Config struct {
	Target      Point
	RandomPoint bool
	Seed        int64
	Margin      int
	FeedbackMs  int
	History     int
	Banner      bool
}

// FeedbackDuration returns how long the feedback overlay stays visible.
func (c Config) FeedbackDuration() time.Duration {
	return time.Duration(c.FeedbackMs) * time.Millisecond
}

// Attempt captures a single submitted answer.
type Attempt struct {
	SessionID   string
	Round       int
	Target      Point
	Input       string
	Line        *Line
	Correct     bool
	SubmittedAt time.Time
}

// RoundSummary aggregates attempts made against one target point.
type RoundSummary struct {
	Round        int
	Target       Point
	Attempts     int
	Correct      int
	FirstCorrect int
}
