package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/archetypes"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/tags"
)

// CreatePlayer spawns the player at its spawn point, airborne and at rest.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	spawnX := cfg.Player.SpawnX
	spawnY := cfg.World.LevelHeight - cfg.Player.SpawnYOffset

	obj := resolv.NewObject(spawnX, spawnY, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Player.SetValue(player, components.PlayerData{
		FacingRight: true,
		Motion:      components.MotionAirborne,
		SpawnX:      spawnX,
		SpawnY:      spawnY,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
