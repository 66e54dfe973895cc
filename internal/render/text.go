package render

import (
	"fmt"
	"io"
	"strings"

	"fleetsim/internal/combat"
)

const cellWidth = 7

// Grid writes the board top row first (highest y), one "Owner-ShipID" label per
// occupied cell. Destroyed ships carry a trailing '*', fired empty cells show 'x'.
func Grid(w io.Writer, snap combat.Snapshot) error {
	var sb strings.Builder
	sb.WriteString("\n--- Current Battlefield ---\n")
	for y := snap.Size - 1; y >= 0; y-- {
		sb.WriteString("|")
		for x := 0; x < snap.Size; x++ {
			label := ""
			if cell, ok := snap.CellAt(x, y); ok {
				label = fmt.Sprintf("%s-%s", cell.Owner, cell.ShipID)
				if cell.Destroyed {
					label += "*"
				}
			} else if snap.Fired.Has(combat.C(x, y)) {
				label = "x"
			}
			fmt.Fprintf(&sb, " %-*s|", cellWidth-1, label)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("-", 1+snap.Size*(cellWidth+1)))
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Turn formats one turn as a console line.
func Turn(ev combat.TurnEvent) string {
	result := `"Miss"`
	if ev.Hit {
		state := "destroyed"
		if ev.AlreadyDestroyed {
			state = "already destroyed"
		}
		result = fmt.Sprintf(`"Hit" %s-%s %s`, ev.Owner, ev.ShipID, state)
	}
	return fmt.Sprintf("%s's turn: Missile fired at (%d, %d) : %s : Ships Remaining - PlayerA:%d, PlayerB:%d",
		ev.Attacker.Display(), ev.Target.X, ev.Target.Y, result,
		ev.Remaining[combat.PlayerA], ev.Remaining[combat.PlayerB])
}

// Outcome formats the final line of a game.
func Outcome(o combat.Outcome) string {
	switch o.Kind {
	case combat.OutcomeWin:
		return fmt.Sprintf("GameOver. %s wins.", o.Winner.Display())
	case combat.OutcomeDraw:
		return "No more coordinates to fire at. Game is a draw."
	default:
		return "Game in progress."
	}
}
