package combat

import (
	"fmt"
	"sort"
)

// Coordinate is one grid cell. X is the column, Y the row.
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func C(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

func (c Coordinate) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Territory is the inclusive column range [MinCol, MaxCol] owned by one player.
type Territory struct {
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
}

func (t Territory) Contains(x int) bool { return t.MinCol <= x && x <= t.MaxCol }
func (t Territory) Width() int         { return t.MaxCol - t.MinCol + 1 }

// Partition splits the columns of an n x n battlefield into the territories of A and B.
// n must already be validated as positive and even.
func Partition(n int) (a, b Territory) {
	return Territory{MinCol: 0, MaxCol: n/2 - 1}, Territory{MinCol: n / 2, MaxCol: n - 1}
}

// CoordSet is a set of coordinates. Strategies receive it read-only.
type CoordSet map[Coordinate]struct{}

func NewCoordSet(cs ...Coordinate) CoordSet {
	s := make(CoordSet, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

func (s CoordSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Add(c Coordinate) { s[c] = struct{}{} }
func (s CoordSet) Len() int         { return len(s) }

// Sorted returns the members column-major, ascending.
func (s CoordSet) Sorted() []Coordinate {
	out := make([]Coordinate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func (s CoordSet) Clone() CoordSet {
	cp := make(CoordSet, len(s))
	for c := range s {
		cp[c] = struct{}{}
	}
	return cp
}
