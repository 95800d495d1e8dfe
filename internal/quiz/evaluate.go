package quiz

import (
	"math"

	"github.com/verte-zerg/linequiz/internal/model"
)

// Tolerance is the absolute logical-unit distance under which a line counts as
// passing through the target.
const Tolerance = 0.01

// Evaluate reports whether line passes through target. A nil line is never correct.
func Evaluate(target model.Point, line *model.Line) bool {
	if line == nil {
		return false
	}
	return math.Abs(line.At(target.X)-target.Y) < Tolerance
}
