package combat

import (
	"fmt"
	"math/rand"
	"strings"
)

// TargetingStrategy picks the next cell to fire at. The result must be in candidates
// and not in excluded; ok is false only when no such cell exists. Implementations
// must not modify their arguments.
type TargetingStrategy interface {
	SelectTarget(candidates []Coordinate, excluded CoordSet) (Coordinate, bool)
}

type StrategyFunc func(candidates []Coordinate, excluded CoordSet) (Coordinate, bool)

func (f StrategyFunc) SelectTarget(candidates []Coordinate, excluded CoordSet) (Coordinate, bool) {
	return f(candidates, excluded)
}

func eligible(candidates []Coordinate, excluded CoordSet) []Coordinate {
	out := make([]Coordinate, 0, len(candidates))
	for _, c := range candidates {
		if !excluded.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// RandomStrategy chooses uniformly among eligible cells.
type RandomStrategy struct {
	Rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy { return &RandomStrategy{Rng: rng} }

func (s *RandomStrategy) SelectTarget(candidates []Coordinate, excluded CoordSet) (Coordinate, bool) {
	pool := eligible(candidates, excluded)
	if len(pool) == 0 {
		return Coordinate{}, false
	}
	return pool[s.Rng.Intn(len(pool))], true
}

// SequentialStrategy fires at the first eligible candidate in the order given.
type SequentialStrategy struct{}

func (SequentialStrategy) SelectTarget(candidates []Coordinate, excluded CoordSet) (Coordinate, bool) {
	for _, c := range candidates {
		if !excluded.Has(c) {
			return c, true
		}
	}
	return Coordinate{}, false
}

// LatticeStrategy fires at random cells with even x and even y first. Every square
// ship with an even side covers at least one of them, so a fleet is found within a
// quarter of the territory. Once those run out it picks among the rest.
type LatticeStrategy struct {
	Rng *rand.Rand
}

func NewLatticeStrategy(rng *rand.Rand) *LatticeStrategy { return &LatticeStrategy{Rng: rng} }

func (s *LatticeStrategy) SelectTarget(candidates []Coordinate, excluded CoordSet) (Coordinate, bool) {
	pool := eligible(candidates, excluded)
	if len(pool) == 0 {
		return Coordinate{}, false
	}
	var lattice []Coordinate
	for _, c := range pool {
		if c.X%2 == 0 && c.Y%2 == 0 {
			lattice = append(lattice, c)
		}
	}
	if len(lattice) > 0 {
		return lattice[s.Rng.Intn(len(lattice))], true
	}
	return pool[s.Rng.Intn(len(pool))], true
}

const (
	StrategyRandom     = "random"
	StrategySequential = "sequential"
	StrategyLattice    = "lattice"
)

// NewStrategy builds a strategy by name. An empty name means random.
func NewStrategy(name string, rng *rand.Rand) (TargetingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyRandom:
		return NewRandomStrategy(rng), nil
	case StrategySequential:
		return SequentialStrategy{}, nil
	case StrategyLattice:
		return NewLatticeStrategy(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
