package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// UpdateCamera centers the viewport on the player after collision
// resolution, clamped to the level bounds. Gameplay mode only; the editor
// pans the camera freely instead.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	camera.Update(obj.Rect())
}

// UpdateCameraPan moves the camera with the pan actions at a fixed speed.
// Editor mode only.
func UpdateCameraPan(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)

	speed := cfg.Camera.PanSpeed
	if input.Current[cfg.ActionPanUp] {
		camera.Pan(0, speed)
	}
	if input.Current[cfg.ActionPanDown] {
		camera.Pan(0, -speed)
	}
	if input.Current[cfg.ActionPanLeft] {
		camera.Pan(speed, 0)
	}
	if input.Current[cfg.ActionPanRight] {
		camera.Pan(-speed, 0)
	}
}
