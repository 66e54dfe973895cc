package combat

import "sort"

// Player holds one side's territory, fleet and the shots it has fired.
type Player struct {
	ID        PlayerID
	Territory Territory

	fieldSize int
	fleet     map[string]*Ship
	fired     CoordSet
}

func NewPlayer(id PlayerID, t Territory, fieldSize int) *Player {
	return &Player{
		ID: id, Territory: t, fieldSize: fieldSize,
		fleet: map[string]*Ship{}, fired: CoordSet{},
	}
}

func (p *Player) HasShip(id string) bool {
	_, ok := p.fleet[id]
	return ok
}

// AddShip registers s under its id. Ids are unique within a fleet.
func (p *Player) AddShip(s *Ship) error {
	if p.HasShip(s.ID) {
		return &PlacementError{ShipID: s.ID, Owner: p.ID, Reason: ReasonDuplicateID, Coordinate: s.Center}
	}
	p.fleet[s.ID] = s
	return nil
}

func (p *Player) Ship(id string) *Ship { return p.fleet[id] }
func (p *Player) FleetSize() int       { return len(p.fleet) }

// Ships returns the fleet sorted by id.
func (p *Player) Ships() []*Ship {
	out := make([]*Ship, 0, len(p.fleet))
	for _, s := range p.fleet {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (p *Player) RemainingShipCount() int {
	n := 0
	for _, s := range p.fleet {
		if !s.Destroyed() {
			n++
		}
	}
	return n
}

// TerritoryCoordinates lists every cell of the territory, column-major ascending.
func (p *Player) TerritoryCoordinates() []Coordinate {
	out := make([]Coordinate, 0, p.Territory.Width()*p.fieldSize)
	for x := p.Territory.MinCol; x <= p.Territory.MaxCol; x++ {
		for y := 0; y < p.fieldSize; y++ {
			out = append(out, Coordinate{X: x, Y: y})
		}
	}
	return out
}

func (p *Player) recordShot(c Coordinate) { p.fired.Add(c) }

func (p *Player) FiredShots() CoordSet { return p.fired.Clone() }
func (p *Player) ShotCount() int       { return p.fired.Len() }
