package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	"github.com/zshdevopscatftw/moondust/shared/gamemath"
	"github.com/zshdevopscatftw/moondust/tags"
)

// UpdateCollisions moves the player and resolves contacts with solid
// tiles. Horizontal displacement is applied and resolved fully before
// vertical; the ordering decides corner behavior and must not change.
// Runs after intent and gravity, once per tick.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	resolveHorizontal(physics, obj.Object)
	resolveVertical(player, physics, obj.Object)
	clampToLevel(e, player, physics, obj.Object)

	if obj.Space != nil {
		obj.Update()
	}
}

// resolveHorizontal applies SpeedX, then snaps the player flush against
// every solid the moved rectangle overlaps.
func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object) {
	obj.X += physics.SpeedX

	hits := overlappingSolids(obj)
	if len(hits) == 0 {
		return
	}

	for _, solid := range hits {
		if physics.SpeedX > 0 {
			obj.X = solid.X - obj.W
		} else if physics.SpeedX < 0 {
			obj.X = solid.X + solid.W
		}
	}
	physics.SpeedX = 0
}

// resolveVertical applies SpeedY and resolves landings and ceiling bumps.
// The grounded state is cleared first and only re-established by an actual
// downward contact (or the level floor, handled in clampToLevel).
func resolveVertical(player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object) {
	player.Motion = components.MotionAirborne
	obj.Y += physics.SpeedY

	hits := overlappingSolids(obj)
	if len(hits) == 0 {
		return
	}

	falling := physics.SpeedY > 0
	rising := physics.SpeedY < 0
	for _, solid := range hits {
		if falling {
			obj.Y = solid.Y - obj.H
			player.Motion = components.MotionGrounded
		} else if rising {
			obj.Y = solid.Y + solid.H
		}
	}
	if falling || rising {
		physics.SpeedY = 0
	}
}

// clampToLevel keeps the player inside the level. Falling past the bottom
// edge pins the player to it and grounds them instead of letting them fall
// forever.
func clampToLevel(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if obj.X < 0 {
		obj.X = 0
	}
	if obj.X+obj.W > level.Width {
		obj.X = level.Width - obj.W
	}
	if obj.Y+obj.H > level.Height {
		obj.Y = level.Height - obj.H
		physics.SpeedY = 0
		player.Motion = components.MotionGrounded
	}
}

// overlappingSolids returns the solid objects whose rectangles overlap the
// object's current rectangle. The space's cell hash narrows the candidate
// set; the exact test rejects objects that only share an edge.
func overlappingSolids(obj *resolv.Object) []*resolv.Object {
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	rect := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	var hits []*resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if rect.Intersects(gamemath.Rect{X: solid.X, Y: solid.Y, W: solid.W, H: solid.H}) {
			hits = append(hits, solid)
		}
	}
	return hits
}
