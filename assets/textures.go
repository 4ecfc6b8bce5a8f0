package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// Textures are generated in code at startup so the engine ships without
// image files, matching the rest of the procedural asset pipeline.

var (
	tileImages  map[components.TileKind]*ebiten.Image
	playerImage *ebiten.Image
)

// GenerateTextures builds every tile and player texture. Must run after
// the Ebiten game has been created and before the first draw.
func GenerateTextures() {
	size := float32(cfg.World.GridSize)

	tileImages = map[components.TileKind]*ebiten.Image{
		components.TileGround:   blockTexture(size, color.RGBA{139, 69, 19, 255}, styleSolid),
		components.TileGrassTop: blockTexture(size, color.RGBA{34, 139, 34, 255}, styleSolid),
		components.TileBrick:    blockTexture(size, color.RGBA{178, 34, 34, 255}, styleBrick),
		components.TileQuestion: blockTexture(size, color.RGBA{255, 215, 0, 255}, styleQuestion),
		components.TilePipe:     blockTexture(size, color.RGBA{0, 180, 0, 255}, styleSolid),
		components.TileGoomba:   goombaTexture(),
	}

	playerImage = playerTexture()
}

// TileImage returns the texture for a tile kind, or the ground texture for
// an unknown kind.
func TileImage(kind components.TileKind) *ebiten.Image {
	if img, ok := tileImages[kind]; ok {
		return img
	}
	return tileImages[components.TileGround]
}

// PlayerImage returns the player sprite.
func PlayerImage() *ebiten.Image {
	return playerImage
}

type blockStyle int

const (
	styleSolid blockStyle = iota
	styleBrick
	styleQuestion
)

func blockTexture(size float32, fill color.RGBA, style blockStyle) *ebiten.Image {
	img := ebiten.NewImage(int(size), int(size))
	img.Fill(fill)

	switch style {
	case styleBrick:
		vector.StrokeRect(img, 0, 0, size, size, 2, cfg.Black, false)
		vector.StrokeLine(img, 0, size/2, size, size/2, 2, cfg.Black, false)
		vector.StrokeLine(img, size/2, 0, size/2, size/2, 2, cfg.Black, false)
		vector.StrokeLine(img, size/4, size/2, size/4, size, 2, cfg.Black, false)
		vector.StrokeLine(img, size*0.75, size/2, size*0.75, size, 2, cfg.Black, false)
	case styleQuestion:
		vector.DrawFilledRect(img, 5, 5, size-10, size-10, color.RGBA{180, 130, 0, 255}, false)
		vector.DrawFilledCircle(img, size/2, size/3, 5, cfg.Black, false)
		vector.DrawFilledCircle(img, size/2, size*0.7, 5, cfg.Black, false)
	}

	return img
}

func goombaTexture() *ebiten.Image {
	img := ebiten.NewImage(40, 40)
	img.Fill(color.RGBA{165, 42, 42, 255})
	vector.DrawFilledCircle(img, 12, 15, 5, cfg.White, false)
	vector.DrawFilledCircle(img, 28, 15, 5, cfg.White, false)
	return img
}

func playerTexture() *ebiten.Image {
	img := ebiten.NewImage(int(cfg.Player.Width), int(cfg.Player.Height))
	img.Fill(color.RGBA{255, 0, 0, 255})
	vector.DrawFilledRect(img, 0, float32(cfg.Player.Height)/2, float32(cfg.Player.Width), float32(cfg.Player.Height)/2, color.RGBA{0, 0, 255, 255}, false)
	return img
}
