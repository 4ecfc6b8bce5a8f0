package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/zshdevopscatftw/moondust/shared/gamemath"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as a world-space rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
