package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/assets"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/shared/gamemath"
	"github.com/zshdevopscatftw/moondust/systems/factory"
	"github.com/zshdevopscatftw/moondust/tags"
)

// UpdateEditor handles tool cycling, tile placement and tile removal.
// Editor mode only. Placement paints while the primary button is held;
// removal triggers on the secondary button press.
func UpdateEditor(e *ecs.ECS) {
	editorEntry, ok := components.Editor.First(e.World)
	if !ok {
		return
	}
	editor := components.Editor.Get(editorEntry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionCycleTool).JustPressed {
		editor.CycleTool()
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	worldPoint := camera.ToWorld(input.Cursor)

	switch {
	case input.SecondaryJust:
		removeTileAt(e, worldPoint)
	case input.PrimaryHeld:
		placeTile(e, editor, worldPoint)
	}
}

// placeTile places the selected tile kind into the grid cell containing
// worldPoint. Placement is refused when any entity's rectangle contains
// the cell's probe point; a single-point occupancy check, kept as is
// rather than promoted to a full rectangle test.
func placeTile(e *ecs.ECS, editor *components.EditorData, worldPoint gamemath.Vec2) {
	cell := gamemath.CellOrigin(worldPoint, cfg.World.GridSize)
	probe := cell.Add(gamemath.Vec2{X: cfg.Editor.ProbeOffsetX, Y: cfg.Editor.ProbeOffsetY})

	occupied := false
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if components.Object.Get(entry).Rect().ContainsPoint(probe) {
			occupied = true
		}
	})
	if occupied {
		return
	}

	factory.CreateTile(e, cell.X, cell.Y, editor.SelectedTool)
}

// removeTileAt deletes the first tile whose rectangle contains worldPoint.
// The player is never deletable. A miss is a silent no-op.
func removeTileAt(e *ecs.ECS, worldPoint gamemath.Vec2) {
	var target *donburi.Entry
	tags.Tile.Each(e.World, func(entry *donburi.Entry) {
		if target != nil {
			return
		}
		if components.Object.Get(entry).Rect().ContainsPoint(worldPoint) {
			target = entry
		}
	})
	if target == nil {
		return
	}

	obj := components.Object.Get(target)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	e.World.Remove(target.Entity())
}

// DrawEditorOverlay renders the cell grid and the selected-tool preview
// swatch. Draws nothing while gameplay is live.
func DrawEditorOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !EditorActive(e) {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	grid := cfg.World.GridSize

	// Grid lines aligned to world cells under the current scroll offset
	for x := math.Mod(camera.Offset.X, grid); x < width; x += grid {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(height), 1, cfg.Editor.GridLineColor, false)
	}
	for y := math.Mod(camera.Offset.Y, grid); y < height; y += grid {
		vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, cfg.Editor.GridLineColor, false)
	}

	// Tool preview in the top-right corner
	editorEntry, ok := components.Editor.First(e.World)
	if !ok {
		return
	}
	editor := components.Editor.Get(editorEntry)

	preview := assets.TileImage(editor.SelectedTool)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(width-grid-cfg.Editor.PreviewMargin, cfg.Editor.PreviewMargin)
	screen.DrawImage(preview, op)
}
