package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a render-only vertical bob. The collision object never
// moves; only the drawn position is offset.
type TweenData struct {
	Sequence  *gween.Sequence
	BobOffset float64
}

var Tween = donburi.NewComponentType[TweenData]()
