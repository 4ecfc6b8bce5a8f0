package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// UpdateTweens advances decorative tween sequences. The resulting value
// only offsets rendering; collision geometry is untouched.
func UpdateTweens(e *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TickRate)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tween := components.Tween.Get(entry)
		if tween.Sequence == nil {
			return
		}
		value, _, _ := tween.Sequence.Update(dt)
		tween.BobOffset = float64(value)
	})
}
