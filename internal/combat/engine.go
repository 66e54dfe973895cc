package combat

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetsim/internal/util"
)

// Engine runs one game: Uninitialized -> Setup -> InProgress -> Finished.
// An Engine is not safe for concurrent use; separate Engines share nothing.
type Engine struct {
	id      string
	stage   Stage
	field   *Battlefield
	players map[PlayerID]*Player
	fired   CoordSet
	active  PlayerID
	turns   int
	outcome Outcome

	strategies map[PlayerID]TargetingStrategy
	listeners  []func(TurnEvent)
}

type Option func(*Engine)

// WithStrategy sets the targeting strategy used when p attacks.
func WithStrategy(p PlayerID, s TargetingStrategy) Option {
	return func(e *Engine) { e.strategies[p] = s }
}

// WithListener receives every TurnEvent as soon as the turn resolves. Listeners are
// called in the order they were added.
func WithListener(fn func(TurnEvent)) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, fn) }
}

func WithID(id string) Option {
	return func(e *Engine) { e.id = id }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		id:         uuid.NewString(),
		strategies: map[PlayerID]TargetingStrategy{},
		outcome:    Outcome{Kind: OutcomeInProgress},
	}
	for _, o := range opts {
		o(e)
	}
	seed := time.Now().UnixNano()
	for i, p := range []PlayerID{PlayerA, PlayerB} {
		if e.strategies[p] == nil {
			e.strategies[p] = NewRandomStrategy(util.New(seed + int64(i)))
		}
	}
	return e
}

func (e *Engine) ID() string       { return e.id }
func (e *Engine) Stage() Stage     { return e.stage }
func (e *Engine) Turns() int       { return e.turns }
func (e *Engine) Outcome() Outcome { return e.outcome }

// Player returns nil before Initialize.
func (e *Engine) Player(id PlayerID) *Player { return e.players[id] }

// FiredCount is the number of distinct cells fired at by either player.
func (e *Engine) FiredCount() int { return e.fired.Len() }

// Initialize creates an n x n battlefield and both players. An invalid n leaves the
// engine untouched.
func (e *Engine) Initialize(n int) error {
	if e.stage != StageUninitialized && e.stage != StageSetup {
		return fmt.Errorf("initialize in stage %s: %w", e.stage, ErrWrongStage)
	}
	field, err := NewBattlefield(n)
	if err != nil {
		return fmt.Errorf("initialize %d: %w", n, err)
	}
	ta, tb := Partition(n)
	e.field = field
	e.players = map[PlayerID]*Player{
		PlayerA: NewPlayer(PlayerA, ta, n),
		PlayerB: NewPlayer(PlayerB, tb, n),
	}
	e.fired = CoordSet{}
	e.turns = 0
	e.active = PlayerA
	e.outcome = Outcome{Kind: OutcomeInProgress}
	e.stage = StageSetup
	return nil
}

// RegisterShip adds ship id of the given size to both fleets, A's centred at centerA and
// B's at centerB. Both placements are validated before either is committed.
func (e *Engine) RegisterShip(id string, size int, centerA, centerB Coordinate) error {
	switch e.stage {
	case StageUninitialized:
		return fmt.Errorf("register ship %q: %w", id, ErrNotReady)
	case StageSetup:
	default:
		return fmt.Errorf("register ship %q in stage %s: %w", id, e.stage, ErrWrongStage)
	}

	pa, pb := e.players[PlayerA], e.players[PlayerB]
	shipA, err := NewShip(id, size, centerA, PlayerA)
	if err != nil {
		return err
	}
	shipB, err := NewShip(id, size, centerB, PlayerB)
	if err != nil {
		return err
	}
	for _, pair := range []struct {
		p *Player
		s *Ship
	}{{pa, shipA}, {pb, shipB}} {
		if pair.p.HasShip(id) {
			return &PlacementError{ShipID: id, Owner: pair.p.ID, Reason: ReasonDuplicateID, Coordinate: pair.s.Center}
		}
		if err := e.field.Validate(pair.s, pair.p.Territory); err != nil {
			return err
		}
	}

	// Territories are disjoint, so A's cells cannot invalidate B's placement.
	if err := e.field.Place(shipA, pa.Territory); err != nil {
		return err
	}
	if err := e.field.Place(shipB, pb.Territory); err != nil {
		return err
	}
	if err := pa.AddShip(shipA); err != nil {
		return err
	}
	return pb.AddShip(shipB)
}

// Begin moves a set-up game into play with A to move first.
func (e *Engine) Begin() error {
	switch e.stage {
	case StageUninitialized:
		return fmt.Errorf("begin: battlefield not initialized: %w", ErrNotReady)
	case StageSetup:
	case StageFinished:
		return fmt.Errorf("begin: %w", ErrFinished)
	default:
		return fmt.Errorf("begin in stage %s: %w", e.stage, ErrWrongStage)
	}
	if e.players[PlayerA].FleetSize() == 0 {
		return fmt.Errorf("begin: player A has no ships: %w", ErrNotReady)
	}
	e.active = PlayerA
	e.stage = StageInProgress
	return nil
}

// Step plays one turn. It returns nil when the attacker has nothing left to fire at,
// which ends the game in a draw.
func (e *Engine) Step() (*TurnEvent, error) {
	switch e.stage {
	case StageInProgress:
	case StageFinished:
		return nil, ErrFinished
	default:
		return nil, fmt.Errorf("step in stage %s: %w", e.stage, ErrWrongStage)
	}

	attacker := e.players[e.active]
	defender := e.players[e.active.Opponent()]

	target, ok := e.strategies[attacker.ID].SelectTarget(defender.TerritoryCoordinates(), e.fired)
	if !ok {
		e.finish(Draw())
		return nil, nil
	}
	if e.fired.Has(target) || !defender.Territory.Contains(target.X) || !e.field.InBounds(target) {
		return nil, fmt.Errorf("strategy for player %s chose illegal target %s", attacker.ID, target)
	}

	e.fired.Add(target)
	attacker.recordShot(target)
	e.turns++

	ev := TurnEvent{Turn: e.turns, Attacker: attacker.ID, Target: target}
	if ship := e.field.ShipAt(target.X, target.Y); ship != nil && ship.Owner == defender.ID {
		ev.Hit = true
		ev.ShipID = ship.ID
		ev.Owner = ship.Owner
		ev.AlreadyDestroyed = !ship.Destroy()
	}
	ev.Remaining = map[PlayerID]int{
		PlayerA: e.players[PlayerA].RemainingShipCount(),
		PlayerB: e.players[PlayerB].RemainingShipCount(),
	}
	for _, fn := range e.listeners {
		fn(ev)
	}

	if ev.Remaining[defender.ID] == 0 {
		e.finish(Win(attacker.ID))
	} else {
		e.active = defender.ID
	}
	return &ev, nil
}

// Start begins the game and plays it to the end.
func (e *Engine) Start() (Outcome, error) {
	if err := e.Begin(); err != nil {
		return e.outcome, err
	}
	for e.stage == StageInProgress {
		if _, err := e.Step(); err != nil {
			return e.outcome, err
		}
	}
	return e.outcome, nil
}

func (e *Engine) finish(o Outcome) {
	e.outcome = o
	e.stage = StageFinished
}

// Cell is one occupied grid cell in a Snapshot.
type Cell struct {
	Owner     PlayerID `json:"owner"`
	ShipID    string   `json:"ship_id"`
	Destroyed bool     `json:"destroyed"`
}

// Snapshot is a read-only copy of the board for rendering.
type Snapshot struct {
	Size  int                 `json:"size"`
	Cells map[Coordinate]Cell `json:"-"`
	Fired CoordSet            `json:"-"`
}

func (s Snapshot) CellAt(x, y int) (Cell, bool) {
	c, ok := s.Cells[Coordinate{X: x, Y: y}]
	return c, ok
}

func (e *Engine) Snapshot() Snapshot {
	if e.field == nil {
		return Snapshot{Cells: map[Coordinate]Cell{}, Fired: CoordSet{}}
	}
	cells := map[Coordinate]Cell{}
	for c, s := range e.field.Occupied() {
		cells[c] = Cell{Owner: s.Owner, ShipID: s.ID, Destroyed: s.Destroyed()}
	}
	return Snapshot{Size: e.field.Size(), Cells: cells, Fired: e.fired.Clone()}
}
