package engine

import "math/rand"

// Roller yields uniform pseudo-random integers in [0, 100). The engine
// draws from it for dodge checks, crits and AI decisions, so tests can
// script outcomes by supplying a fixed sequence.
type Roller interface {
	Percent() int
}

type seededRoller struct {
	r *rand.Rand
}

func (s *seededRoller) Percent() int { return s.r.Intn(100) }

// NewRoller returns a Roller backed by math/rand with the given seed.
func NewRoller(seed int64) Roller {
	return &seededRoller{r: rand.New(rand.NewSource(seed))}
}
