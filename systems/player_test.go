package systems

import (
	"testing"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/systems/factory"
)

func TestMoveIntentSetsSpeedAndFacing(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e)

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveLeft] = true

	UpdatePlayer(e)

	physics := components.Physics.Get(player)
	if physics.SpeedX != -cfg.Player.MoveSpeed {
		t.Fatalf("SpeedX = %f, want %f", physics.SpeedX, -cfg.Player.MoveSpeed)
	}
	if components.Player.Get(player).FacingRight {
		t.Fatal("player should face left")
	}

	input.Current[cfg.ActionMoveLeft] = false
	input.Current[cfg.ActionMoveRight] = true

	UpdatePlayer(e)

	if physics.SpeedX != cfg.Player.MoveSpeed {
		t.Fatalf("SpeedX = %f, want %f", physics.SpeedX, cfg.Player.MoveSpeed)
	}
	if !components.Player.Get(player).FacingRight {
		t.Fatal("player should face right")
	}
}

func TestFrictionDecaysWithoutInput(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e)
	getOrCreateInput(e)

	physics := components.Physics.Get(player)
	physics.SpeedX = cfg.Player.MoveSpeed

	UpdatePlayer(e)

	want := cfg.Player.MoveSpeed * cfg.Player.Friction
	if physics.SpeedX != want {
		t.Fatalf("SpeedX = %f, want %f after one friction tick", physics.SpeedX, want)
	}

	// Repeated ticks bring the player to a complete stop, not an
	// ever-shrinking crawl.
	for i := 0; i < 1000 && physics.SpeedX != 0; i++ {
		UpdatePlayer(e)
	}
	if physics.SpeedX != 0 {
		t.Fatalf("SpeedX = %f, want exactly 0", physics.SpeedX)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e)

	input := getOrCreateInput(e)
	input.Current[cfg.ActionJump] = true

	physics := components.Physics.Get(player)
	playerData := components.Player.Get(player)

	// Airborne: jump input is ignored
	UpdatePlayer(e)
	if physics.SpeedY != 0 {
		t.Fatalf("SpeedY = %f, want 0 (no air jump)", physics.SpeedY)
	}

	// Grounded: jump applies the impulse and lifts off
	playerData.Motion = components.MotionGrounded
	UpdatePlayer(e)
	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Fatalf("SpeedY = %f, want %f", physics.SpeedY, -cfg.Player.JumpSpeed)
	}
	if playerData.Motion != components.MotionAirborne {
		t.Fatal("jump should clear the grounded state")
	}
}

func TestGravityAccumulates(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e)

	physics := components.Physics.Get(player)

	UpdateGravity(e)
	UpdateGravity(e)

	want := 2 * cfg.Player.Gravity
	if physics.SpeedY != want {
		t.Fatalf("SpeedY = %f, want %f after two gravity ticks", physics.SpeedY, want)
	}
}
