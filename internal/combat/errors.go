package combat

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize = errors.New("battlefield size must be a positive even integer")
	ErrNotReady    = errors.New("game not ready")
	ErrWrongStage  = errors.New("operation not allowed in current stage")
	ErrFinished    = errors.New("game already finished")
)

type PlacementReason string

const (
	ReasonOutOfBounds    PlacementReason = "out of bounds"
	ReasonWrongTerritory PlacementReason = "outside owner's territory"
	ReasonOverlap        PlacementReason = "overlaps another ship"
	ReasonInvalidShape   PlacementReason = "size must be an even number >= 2"
	ReasonDuplicateID    PlacementReason = "id already in fleet"
)

// PlacementError names the first cell and rule a ship registration failed on.
type PlacementError struct {
	ShipID     string
	Owner      PlayerID
	Reason     PlacementReason
	Coordinate Coordinate
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("ship %q for player %s: %s at %s", e.ShipID, e.Owner, e.Reason, e.Coordinate)
}
