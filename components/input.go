package components

import (
	"github.com/yohamta/donburi"

	"github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/shared/gamemath"
)

// InputData is the per-tick input snapshot consumed by the simulation and
// editor systems. The polling system writes it once at the start of every
// tick; everything downstream only reads it.
type InputData struct {
	// Action states indexed by ActionID
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	// Pointer state in screen space. Primary places, secondary deletes.
	Cursor        gamemath.Vec2
	PrimaryHeld   bool
	PrimaryJust   bool
	SecondaryHeld bool
	SecondaryJust bool
}

// ActionState describes an action's edge and level state for one tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var Input = donburi.NewComponentType[InputData]()
