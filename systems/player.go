package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/shared/gamemath"
)

// UpdatePlayer resolves movement intent and jumping for the tick. Runs
// before gravity and collision resolution.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)
	jump := GetAction(input, cfg.ActionJump)

	// Horizontal intent: a held direction sets speed outright; with
	// neither held the speed decays multiplicatively toward rest.
	switch {
	case left.Pressed && !right.Pressed:
		physics.SpeedX = -cfg.Player.MoveSpeed
		player.FacingRight = false
	case right.Pressed && !left.Pressed:
		physics.SpeedX = cfg.Player.MoveSpeed
		player.FacingRight = true
	default:
		physics.SpeedX = gamemath.DecayFriction(physics.SpeedX, cfg.Player.Friction, cfg.Player.StopEpsilon)
	}

	// Jump only from the ground
	if jump.Pressed && player.Motion == components.MotionGrounded {
		physics.SpeedY = -cfg.Player.JumpSpeed
		player.Motion = components.MotionAirborne
	}
}

// UpdateGravity accelerates the player downward. No terminal velocity; the
// collision step and the level floor bound the fall.
func UpdateGravity(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	physics.SpeedY += cfg.Player.Gravity
}
