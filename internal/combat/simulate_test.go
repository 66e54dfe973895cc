package combat_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"fleetsim/internal/combat"
	"fleetsim/internal/config"
)

func TestRunSingle_DefaultScenario(t *testing.T) {
	sc := config.DefaultScenario()
	res, err := combat.RunSingle(sc, 12345, true)
	require.NoError(t, err)

	require.NotEmpty(t, res.GameID)
	require.True(t, res.Outcome.Finished())
	require.Len(t, res.Events, res.Turns)
	require.Equal(t, res.Turns, res.Shots[combat.PlayerA]+res.Shots[combat.PlayerB])
	require.Len(t, res.Meta.Ships, 2*len(sc.Ships))
	require.Empty(t, res.Meta.Rejected)
	if res.Outcome.Kind == combat.OutcomeWin {
		require.Zero(t, res.Remaining[res.Outcome.Winner.Opponent()])
	}

	again, err := combat.RunSingle(sc, 12345, true)
	require.NoError(t, err)
	require.Equal(t, res.Events, again.Events)
	require.NotEqual(t, res.GameID, again.GameID)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(combat.MarshalPretty(res), &decoded))
	require.Contains(t, decoded, "events")
	require.Contains(t, decoded, "outcome")
}

func TestRunSingle_NoRecord(t *testing.T) {
	res, err := combat.RunSingle(config.DefaultScenario(), 1, false)
	require.NoError(t, err)
	require.Nil(t, res.Events)
	require.Positive(t, res.Turns)
}

func TestSetup_SkipsRejectedShips(t *testing.T) {
	sc := &config.ScenarioConfig{
		Name: "bad", Size: 6,
		Ships: []config.ShipDef{
			{ID: "SH1", Size: 2, A: config.PosDef{X: 1, Y: 5}, B: config.PosDef{X: 4, Y: 4}},
			{ID: "SH2", Size: 2, A: config.PosDef{X: 2, Y: 5}, B: config.PosDef{X: 4, Y: 1}},
			{ID: "SH3", Size: 3, A: config.PosDef{X: 1, Y: 1}, B: config.PosDef{X: 4, Y: 1}},
		},
	}
	e, rejected, err := combat.Setup(sc, 3)
	require.NoError(t, err)
	require.Len(t, rejected, 2)
	require.Equal(t, combat.ReasonOverlap, placementReason(t, rejected[0]))
	require.Equal(t, combat.ReasonInvalidShape, placementReason(t, rejected[1]))
	require.Equal(t, 1, e.Player(combat.PlayerA).FleetSize())

	res, err := combat.RunSingle(sc, 3, false)
	require.NoError(t, err)
	require.Len(t, res.Meta.Rejected, 2)
}

func TestSetup_Errors(t *testing.T) {
	_, _, err := combat.Setup(&config.ScenarioConfig{Size: 5}, 1)
	require.ErrorIs(t, err, combat.ErrInvalidSize)

	_, _, err = combat.Setup(&config.ScenarioConfig{Size: 6, Strategies: config.StrategyConfig{B: "nope"}}, 1)
	require.Error(t, err)

	_, err = combat.RunSingle(&config.ScenarioConfig{Size: 6}, 1, false)
	require.ErrorIs(t, err, combat.ErrNotReady)
}

func TestRunBatch(t *testing.T) {
	sc := config.DefaultScenario()
	st := combat.RunBatch(sc, 77, 40, 4)
	require.Equal(t, 40, st.Runs)
	require.Zero(t, st.Failed)
	require.Equal(t, 40, st.WinsA+st.WinsB+st.Draws)
	require.InDelta(t, 1.0, st.WinRateA+st.WinRateB+st.DrawRate, 1e-9)
	require.LessOrEqual(t, st.MaxTurns, sc.Size*sc.Size)
	require.Positive(t, st.AvgTurns)

	// results do not depend on the worker count
	require.Equal(t, st, combat.RunBatch(sc, 77, 40, 1))
}

func TestRunBatch_Failures(t *testing.T) {
	st := combat.RunBatch(&config.ScenarioConfig{Size: 3}, 1, 5, 2)
	require.Equal(t, 5, st.Failed)
	require.Len(t, st.Errors, 5)
	require.Zero(t, st.AvgTurns)
}
