package quiz

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/linequiz/internal/model"
)

// Generator produces random integer target points that sit strictly inside the axes.
type Generator struct {
	rnd *rand.Rand
	min int
	max int
}

// NewGenerator returns a Generator seeded with seed, or with the current time when seed is 0.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		min: int(model.AxisMin) + 1,
		max: int(model.AxisMax) - 1,
	}
}

// Point returns the next random target.
func (g *Generator) Point() model.Point {
	span := g.max - g.min + 1
	return model.Point{
		X: float64(g.min + g.rnd.Intn(span)),
		Y: float64(g.min + g.rnd.Intn(span)),
	}
}
