package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/archetypes"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// CreateSpace creates the collision space sized to the level, partitioned
// into grid-sized cells.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(cfg.World.LevelWidth), int(cfg.World.LevelHeight),
		int(cfg.World.GridSize), int(cfg.World.GridSize),
	)
	components.Space.Set(space, spaceData)
	return space
}
