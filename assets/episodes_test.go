package assets

import (
	"testing"

	"github.com/zshdevopscatftw/moondust/components"
)

func TestEmbeddedStarterMapsLoad(t *testing.T) {
	for _, ep := range Episodes {
		if ep.MapPath == "" {
			continue
		}
		sm, err := LoadStarterMap(ep.MapPath)
		if err != nil {
			t.Fatalf("%s: %v", ep.Name, err)
		}
		if sm.Width != 4000 || sm.Height != 2000 {
			t.Fatalf("%s: map is %fx%f, want 4000x2000", ep.Name, sm.Width, sm.Height)
		}
		if len(sm.Tiles) == 0 {
			t.Fatalf("%s: starter map has no tiles", ep.Name)
		}
		for _, tile := range sm.Tiles {
			if tile.Kind < 0 || tile.Kind >= components.TileKindCount {
				t.Fatalf("%s: tile kind %d out of range", ep.Name, tile.Kind)
			}
			if tile.X < 0 || tile.X >= sm.Width || tile.Y < 0 || tile.Y >= sm.Height {
				t.Fatalf("%s: tile at (%f, %f) outside the map", ep.Name, tile.X, tile.Y)
			}
		}
	}
}

func TestEpisodeCatalogOrder(t *testing.T) {
	if len(Episodes) != 4 {
		t.Fatalf("episode count = %d, want 4", len(Episodes))
	}
	if Episodes[len(Episodes)-1].MapPath != "" {
		t.Fatal("the empty template episode must have no starter map")
	}
}

func TestLoadStarterMapMissingFile(t *testing.T) {
	if _, err := LoadStarterMap("levels/nope.tmx"); err == nil {
		t.Fatal("missing map should return an error")
	}
}
