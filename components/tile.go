package components

import "github.com/yohamta/donburi"

// TileKind identifies a placeable tile type. The declaration order is the
// editor's tool cycling order.
type TileKind int

const (
	TileGround TileKind = iota
	TileGrassTop
	TileBrick
	TileQuestion
	TilePipe
	TileGoomba
	TileKindCount
)

var tileKindNames = [TileKindCount]string{
	"ground", "grass_top", "brick", "question", "pipe", "goomba",
}

func (k TileKind) String() string {
	if k < 0 || k >= TileKindCount {
		return "unknown"
	}
	return tileKindNames[k]
}

// Solid reports whether tiles of this kind block the player. The goomba is
// a decorative stamp, not an obstacle.
func (k TileKind) Solid() bool {
	return k != TileGoomba
}

// Size returns the footprint of a tile of this kind. Solid tiles fill a
// whole cell; the goomba stamp is smaller than its cell.
func (k TileKind) Size(cellSize float64) (w, h float64) {
	if k == TileGoomba {
		return 40, 40
	}
	return cellSize, cellSize
}

type TileData struct {
	Kind TileKind
}

var Tile = donburi.NewComponentType[TileData]()
