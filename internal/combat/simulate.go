package combat

import (
	"encoding/json"
	"errors"
	"fmt"

	"fleetsim/internal/config"
	"fleetsim/internal/util"
)

type SimResult struct {
	GameID    string           `json:"game_id"`
	Outcome   Outcome          `json:"outcome"`
	Turns     int              `json:"turns"`
	Shots     map[PlayerID]int `json:"shots"`
	Remaining map[PlayerID]int `json:"remaining"`
	Events    []TurnEvent      `json:"events,omitempty"`
	Meta      SimMeta          `json:"meta"`
}

type SimMeta struct {
	Scenario   string              `json:"scenario"`
	Size       int                 `json:"size"`
	Seed       int64               `json:"seed"`
	Strategies map[PlayerID]string `json:"strategies"`
	Ships      []SimShipMeta       `json:"ships"`
	Rejected   []string            `json:"rejected,omitempty"`
	Notes      []string            `json:"notes,omitempty"`
}

type SimShipMeta struct {
	ID        string     `json:"id"`
	Owner     PlayerID   `json:"owner"`
	Size      int        `json:"size"`
	Center    Coordinate `json:"center"`
	Destroyed bool       `json:"destroyed"`
}

// Setup builds an engine from a scenario and registers its ships. Ships that fail
// placement are skipped and returned as errors; the engine stays usable.
func Setup(sc *config.ScenarioConfig, seed int64, opts ...Option) (*Engine, []error, error) {
	stratA, err := NewStrategy(sc.Strategies.A, util.New(seed))
	if err != nil {
		return nil, nil, fmt.Errorf("player A: %w", err)
	}
	stratB, err := NewStrategy(sc.Strategies.B, util.New(seed+1))
	if err != nil {
		return nil, nil, fmt.Errorf("player B: %w", err)
	}
	opts = append([]Option{WithStrategy(PlayerA, stratA), WithStrategy(PlayerB, stratB)}, opts...)
	e := NewEngine(opts...)
	if err := e.Initialize(sc.Size); err != nil {
		return nil, nil, err
	}
	var rejected []error
	for _, sh := range sc.Ships {
		err := e.RegisterShip(sh.ID, sh.Size, Coordinate{X: sh.A.X, Y: sh.A.Y}, Coordinate{X: sh.B.X, Y: sh.B.Y})
		var pe *PlacementError
		if errors.As(err, &pe) {
			rejected = append(rejected, err)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
	}
	return e, rejected, nil
}

// RunSingle plays one game of the scenario to the end. With record set, every turn
// event is kept in the result. Extra options are passed to the engine.
func RunSingle(sc *config.ScenarioConfig, seed int64, record bool, opts ...Option) (SimResult, error) {
	var events []TurnEvent
	if record {
		opts = append(opts, WithListener(func(ev TurnEvent) { events = append(events, ev) }))
	}
	e, rejected, err := Setup(sc, seed, opts...)
	if err != nil {
		return SimResult{}, err
	}
	if _, err := e.Start(); err != nil {
		return SimResult{}, err
	}
	res := Summarize(e, sc, seed, rejected)
	res.Events = events
	return res, nil
}

// Summarize collects the result of a game built by Setup. Events are left to the caller.
func Summarize(e *Engine, sc *config.ScenarioConfig, seed int64, rejected []error) SimResult {
	res := SimResult{
		GameID:    e.ID(),
		Outcome:   e.Outcome(),
		Turns:     e.Turns(),
		Shots:     map[PlayerID]int{},
		Remaining: map[PlayerID]int{},
		Meta: SimMeta{
			Scenario: sc.Name,
			Size:     sc.Size,
			Seed:     seed,
			Strategies: map[PlayerID]string{
				PlayerA: sc.Strategies.A,
				PlayerB: sc.Strategies.B,
			},
		},
	}
	if sc.Note != "" {
		res.Meta.Notes = append(res.Meta.Notes, sc.Note)
	}
	for _, r := range rejected {
		res.Meta.Rejected = append(res.Meta.Rejected, r.Error())
	}
	for _, id := range []PlayerID{PlayerA, PlayerB} {
		p := e.Player(id)
		if p == nil {
			continue
		}
		res.Shots[id] = p.ShotCount()
		res.Remaining[id] = p.RemainingShipCount()
		for _, s := range p.Ships() {
			res.Meta.Ships = append(res.Meta.Ships, SimShipMeta{
				ID: s.ID, Owner: s.Owner, Size: s.Side, Center: s.Center, Destroyed: s.Destroyed(),
			})
		}
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
