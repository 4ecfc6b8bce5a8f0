package components

import "github.com/yohamta/donburi"

// MotionState is the player's vertical contact state. Transitions happen
// only in the vertical collision step and the level-bounds floor; jumping
// moves Grounded -> Airborne.
type MotionState int

const (
	MotionAirborne MotionState = iota
	MotionGrounded
)

func (m MotionState) String() string {
	if m == MotionGrounded {
		return "grounded"
	}
	return "airborne"
}

type PlayerData struct {
	FacingRight bool
	Motion      MotionState
	SpawnX      float64
	SpawnY      float64
}

var Player = donburi.NewComponentType[PlayerData]()
