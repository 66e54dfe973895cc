package combat

import "fmt"

type PlayerID string

const (
	PlayerA PlayerID = "A"
	PlayerB PlayerID = "B"
)

func (p PlayerID) Opponent() PlayerID {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Display is the name used in turn reports, e.g. "PlayerA".
func (p PlayerID) Display() string { return "Player" + string(p) }

type Stage int

const (
	StageUninitialized Stage = iota
	StageSetup
	StageInProgress
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageUninitialized:
		return "Uninitialized"
	case StageSetup:
		return "Setup"
	case StageInProgress:
		return "InProgress"
	case StageFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

type OutcomeKind string

const (
	OutcomeInProgress OutcomeKind = "in_progress"
	OutcomeWin        OutcomeKind = "win"
	OutcomeDraw       OutcomeKind = "draw"
)

type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner PlayerID    `json:"winner,omitempty"`
}

func Win(p PlayerID) Outcome { return Outcome{Kind: OutcomeWin, Winner: p} }
func Draw() Outcome          { return Outcome{Kind: OutcomeDraw} }

func (o Outcome) Finished() bool { return o.Kind == OutcomeWin || o.Kind == OutcomeDraw }

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWin:
		return fmt.Sprintf("%s wins", o.Winner.Display())
	case OutcomeDraw:
		return "Draw"
	default:
		return "In progress"
	}
}

// TurnEvent is emitted once per fired shot. ShipID and Owner are set on a hit;
// AlreadyDestroyed marks a hit on a ship sunk by an earlier shot.
type TurnEvent struct {
	Turn             int              `json:"turn"`
	Attacker         PlayerID         `json:"attacker"`
	Target           Coordinate       `json:"target"`
	Hit              bool             `json:"hit"`
	ShipID           string           `json:"ship_id,omitempty"`
	Owner            PlayerID         `json:"owner,omitempty"`
	AlreadyDestroyed bool             `json:"already_destroyed,omitempty"`
	Remaining        map[PlayerID]int `json:"remaining"`
}

// Ship is a square ship. Its footprint never changes after construction; only the
// destroyed flag does, and only from false to true.
type Ship struct {
	ID        string
	Side      int
	Center    Coordinate
	Owner     PlayerID
	footprint []Coordinate
	destroyed bool
}

// NewShip derives the footprint [cx-side/2, cx+side/2-1] x [cy-side/2, cy+side/2-1].
// Cells may fall outside any battlefield; placement rejects those.
func NewShip(id string, side int, center Coordinate, owner PlayerID) (*Ship, error) {
	if side < 2 || side%2 != 0 {
		return nil, &PlacementError{ShipID: id, Owner: owner, Reason: ReasonInvalidShape, Coordinate: center}
	}
	half := side / 2
	cells := make([]Coordinate, 0, side*side)
	for x := center.X - half; x < center.X+half; x++ {
		for y := center.Y - half; y < center.Y+half; y++ {
			cells = append(cells, Coordinate{X: x, Y: y})
		}
	}
	return &Ship{ID: id, Side: side, Center: center, Owner: owner, footprint: cells}, nil
}

// Footprint returns a copy of the occupied cells, column-major.
func (s *Ship) Footprint() []Coordinate {
	out := make([]Coordinate, len(s.footprint))
	copy(out, s.footprint)
	return out
}

func (s *Ship) Occupies(c Coordinate) bool {
	half := s.Side / 2
	return c.X >= s.Center.X-half && c.X < s.Center.X+half &&
		c.Y >= s.Center.Y-half && c.Y < s.Center.Y+half
}

func (s *Ship) Destroyed() bool { return s.destroyed }

// Destroy sinks the ship. It reports whether this call changed the flag.
func (s *Ship) Destroy() bool {
	if s.destroyed {
		return false
	}
	s.destroyed = true
	return true
}

func (s *Ship) String() string { return fmt.Sprintf("%s-%s", s.Owner, s.ID) }
