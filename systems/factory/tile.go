package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/archetypes"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/tags"
)

// CreateTile spawns a tile of the given kind at a world position. Solid
// kinds join the collision space; decorative kinds only render. Question
// blocks get a looping render-only bob.
func CreateTile(ecs *ecs.ECS, x, y float64, kind components.TileKind) *donburi.Entry {
	var tile *donburi.Entry
	if kind == components.TileQuestion {
		tile = archetypes.Tile.Spawn(ecs, components.Tween)
	} else {
		tile = archetypes.Tile.Spawn(ecs)
	}

	w, h := kind.Size(cfg.World.GridSize)

	resolvTag := tags.ResolvDecor
	if kind.Solid() {
		resolvTag = tags.ResolvSolid
	}
	obj := resolv.NewObject(x, y, w, h, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = tile

	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	components.Tile.SetValue(tile, components.TileData{Kind: kind})

	if kind.Solid() {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Add(obj)
		}
	}

	if kind == components.TileQuestion {
		dist := float32(cfg.Tween.QuestionBobDistance)
		secs := cfg.Tween.QuestionBobSeconds
		seq := gween.NewSequence(
			gween.New(0, -dist, secs/2, ease.InOutSine),
			gween.New(-dist, 0, secs/2, ease.InOutSine),
		)
		seq.SetLoop(-1)
		components.Tween.SetValue(tile, components.TweenData{Sequence: seq})
	}

	return tile
}
