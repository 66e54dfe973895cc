package combat

// Battlefield is the n x n occupancy grid. Cells are written only by Place.
type Battlefield struct {
	size int
	grid [][]*Ship // grid[y][x]
}

func NewBattlefield(n int) (*Battlefield, error) {
	if n <= 0 || n%2 != 0 {
		return nil, ErrInvalidSize
	}
	grid := make([][]*Ship, n)
	for y := range grid {
		grid[y] = make([]*Ship, n)
	}
	return &Battlefield{size: n, grid: grid}, nil
}

func (b *Battlefield) Size() int { return b.size }

func (b *Battlefield) InBounds(c Coordinate) bool {
	return 0 <= c.X && c.X < b.size && 0 <= c.Y && c.Y < b.size
}

// Validate checks every footprint cell, in order, for bounds, territory and occupancy.
// The first failing cell is reported as a *PlacementError.
func (b *Battlefield) Validate(s *Ship, t Territory) error {
	for _, c := range s.footprint {
		var reason PlacementReason
		switch {
		case !b.InBounds(c):
			reason = ReasonOutOfBounds
		case !t.Contains(c.X):
			reason = ReasonWrongTerritory
		case b.grid[c.Y][c.X] != nil:
			reason = ReasonOverlap
		default:
			continue
		}
		return &PlacementError{ShipID: s.ID, Owner: s.Owner, Reason: reason, Coordinate: c}
	}
	return nil
}

// Place writes the ship into every footprint cell, or into none if validation fails.
func (b *Battlefield) Place(s *Ship, t Territory) error {
	if err := b.Validate(s, t); err != nil {
		return err
	}
	for _, c := range s.footprint {
		b.grid[c.Y][c.X] = s
	}
	return nil
}

// ShipAt returns nil for empty and out-of-bounds cells.
func (b *Battlefield) ShipAt(x, y int) *Ship {
	if !b.InBounds(Coordinate{X: x, Y: y}) {
		return nil
	}
	return b.grid[y][x]
}

// Occupied returns every occupied cell mapped to its ship.
func (b *Battlefield) Occupied() map[Coordinate]*Ship {
	out := map[Coordinate]*Ship{}
	for y, row := range b.grid {
		for x, s := range row {
			if s != nil {
				out[Coordinate{X: x, Y: y}] = s
			}
		}
	}
	return out
}
