package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"

	"github.com/zshdevopscatftw/moondust/components"
)

//go:embed all:levels
var levelFS embed.FS

// Episode is a selectable entry on the episode select screen. MapPath
// names an embedded TMX starter map; an empty path means the episode
// starts from a bare floor.
type Episode struct {
	Name    string
	Desc    string
	MapPath string
}

// Episodes is the built-in episode catalog, in display order.
var Episodes = []Episode{
	{Name: "The Princess Caper", Desc: "Classic adventure!", MapPath: "levels/princess_caper.tmx"},
	{Name: "Mushroom Kingdom Fusion", Desc: "Hardcore difficulty.", MapPath: "levels/kingdom_fusion.tmx"},
	{Name: "Luigi's Vacation", Desc: "Puzzle based levels.", MapPath: "levels/luigis_vacation.tmx"},
	{Name: "My New Episode", Desc: "Empty template.", MapPath: ""},
}

// StarterTile is one tile from an episode's starter map, in world
// coordinates.
type StarterTile struct {
	X, Y float64
	Kind components.TileKind
}

// StarterMap is a parsed episode map.
type StarterMap struct {
	Width  float64
	Height float64
	Tiles  []StarterTile
}

// LoadStarterMap parses an embedded TMX map into world-space tiles. Tile
// layer IDs map onto the tile catalog in declaration order.
func LoadStarterMap(path string) (*StarterMap, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load starter map %s: %w", path, err)
	}

	sm := &StarterMap{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, layer := range levelMap.Layers {
		for i, t := range layer.Tiles {
			if t.Nil {
				continue
			}
			kind := components.TileKind(t.ID)
			if kind < 0 || kind >= components.TileKindCount {
				continue
			}
			sm.Tiles = append(sm.Tiles, StarterTile{
				X:    float64((i % levelMap.Width) * levelMap.TileWidth),
				Y:    float64((i / levelMap.Width) * levelMap.TileHeight),
				Kind: kind,
			})
		}
	}

	return sm, nil
}

// MustLoadStarterMap panics when an embedded map fails to parse; shipping
// maps are validated at startup.
func MustLoadStarterMap(path string) *StarterMap {
	sm, err := LoadStarterMap(path)
	if err != nil {
		panic(err)
	}
	return sm
}
