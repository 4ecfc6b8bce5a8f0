package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/archetypes"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// CreateLevel spawns the level descriptor entity.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Width:  cfg.World.LevelWidth,
		Height: cfg.World.LevelHeight,
	})
	return level
}
