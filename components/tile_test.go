package components

import "testing"

func TestTileKindSolidity(t *testing.T) {
	for kind := TileKind(0); kind < TileKindCount; kind++ {
		want := kind != TileGoomba
		if kind.Solid() != want {
			t.Fatalf("%v.Solid() = %v, want %v", kind, kind.Solid(), want)
		}
	}
}

func TestTileKindSize(t *testing.T) {
	w, h := TileGround.Size(50)
	if w != 50 || h != 50 {
		t.Fatalf("ground size = %fx%f, want 50x50", w, h)
	}

	w, h = TileGoomba.Size(50)
	if w != 40 || h != 40 {
		t.Fatalf("goomba size = %fx%f, want 40x40", w, h)
	}
}

func TestEditorCycleTool(t *testing.T) {
	e := EditorData{SelectedTool: TileGoomba}
	e.CycleTool()
	if e.SelectedTool != TileGround {
		t.Fatalf("tool after wrap = %v, want ground", e.SelectedTool)
	}
}
