package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/archetypes"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/shared/gamemath"
)

// CreateCamera spawns the scroll camera with the window as its viewport
// and the level as its world bounds.
func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Camera: gamemath.NewCamera(
			float64(cfg.C.Width), float64(cfg.C.Height),
			cfg.World.LevelWidth, cfg.World.LevelHeight,
		),
	})
}
