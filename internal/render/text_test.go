package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fleetsim/internal/combat"
	"fleetsim/internal/render"
)

func TestGrid(t *testing.T) {
	e := combat.NewEngine(
		combat.WithStrategy(combat.PlayerA, combat.SequentialStrategy{}),
		combat.WithStrategy(combat.PlayerB, combat.SequentialStrategy{}),
	)
	require.NoError(t, e.Initialize(4))
	require.NoError(t, e.RegisterShip("S1", 2, combat.C(1, 3), combat.C(3, 3)))
	require.NoError(t, e.Begin())
	// A: (2,0) (2,1) miss, (2,2) sinks B-S1. B: (0,0) (0,1) miss.
	for i := 0; i < 5; i++ {
		_, err := e.Step()
		require.NoError(t, err)
	}
	require.Equal(t, combat.Win(combat.PlayerA), e.Outcome())

	var sb strings.Builder
	require.NoError(t, render.Grid(&sb, e.Snapshot()))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Equal(t, "--- Current Battlefield ---", lines[0])
	require.Len(t, lines, 1+4+1)
	require.Equal(t, "| A-S1  | A-S1  | B-S1* | B-S1* |", lines[1])
	require.Equal(t, "| A-S1  | A-S1  | B-S1* | B-S1* |", lines[2])
	require.Equal(t, "| x     |       | x     |       |", lines[3])
	require.Equal(t, "| x     |       | x     |       |", lines[4])
	require.Equal(t, strings.Repeat("-", 33), lines[5])
}

func TestTurn(t *testing.T) {
	miss := combat.TurnEvent{
		Turn: 1, Attacker: combat.PlayerA, Target: combat.C(3, 4),
		Remaining: map[combat.PlayerID]int{combat.PlayerA: 2, combat.PlayerB: 2},
	}
	require.Equal(t,
		`PlayerA's turn: Missile fired at (3, 4) : "Miss" : Ships Remaining - PlayerA:2, PlayerB:2`,
		render.Turn(miss))

	hit := combat.TurnEvent{
		Turn: 2, Attacker: combat.PlayerB, Target: combat.C(0, 4), Hit: true,
		ShipID: "SH1", Owner: combat.PlayerA,
		Remaining: map[combat.PlayerID]int{combat.PlayerA: 1, combat.PlayerB: 2},
	}
	require.Equal(t,
		`PlayerB's turn: Missile fired at (0, 4) : "Hit" A-SH1 destroyed : Ships Remaining - PlayerA:1, PlayerB:2`,
		render.Turn(hit))

	hit.AlreadyDestroyed = true
	require.Contains(t, render.Turn(hit), `"Hit" A-SH1 already destroyed`)
}

func TestOutcome(t *testing.T) {
	require.Equal(t, "GameOver. PlayerB wins.", render.Outcome(combat.Win(combat.PlayerB)))
	require.Equal(t, "No more coordinates to fire at. Game is a draw.", render.Outcome(combat.Draw()))
	require.Equal(t, "Game in progress.", render.Outcome(combat.NewEngine().Outcome()))
}
