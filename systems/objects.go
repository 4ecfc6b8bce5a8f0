package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
)

// UpdateObjects syncs every resolv object with its space after the tick's
// movement has been resolved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
