package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/assets"
	"github.com/zshdevopscatftw/moondust/components"
	"github.com/zshdevopscatftw/moondust/shared/gamemath"
	"github.com/zshdevopscatftw/moondust/tags"
)

var drawOp = &ebiten.DrawImageOptions{}

func gamePos(r gamemath.Rect) gamemath.Vec2 {
	return gamemath.Vec2{X: r.X, Y: r.Y}
}

// DrawSprites renders tiles and the player through the camera transform.
// Entities outside the viewport are culled before any matrix work.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	view := camera.ViewRect()

	components.Tile.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		rect := obj.Rect()
		if !rect.Intersects(view) {
			return
		}

		tile := components.Tile.Get(entry)
		screenPos := camera.ToScreen(gamePos(rect))

		bob := 0.0
		if entry.HasComponent(components.Tween) {
			bob = components.Tween.Get(entry).BobOffset
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(screenPos.X, screenPos.Y+bob)
		screen.DrawImage(assets.TileImage(tile.Kind), drawOp)
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	rect := obj.Rect()
	if !rect.Intersects(view) {
		return
	}

	screenPos := camera.ToScreen(gamePos(rect))
	drawOp.GeoM.Reset()
	if !player.FacingRight {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(rect.W, 0)
	}
	drawOp.GeoM.Translate(screenPos.X, screenPos.Y)
	screen.DrawImage(assets.PlayerImage(), drawOp)
}
