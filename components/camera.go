package components

import (
	"github.com/yohamta/donburi"

	"github.com/zshdevopscatftw/moondust/shared/gamemath"
)

type CameraData struct {
	gamemath.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
