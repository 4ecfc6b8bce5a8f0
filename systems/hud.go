package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/fonts"
)

// DrawHUD renders the top status bar with a mode-dependent hint line.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	barH := float64(cfg.C.HUDHeight)

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(barH), cfg.HUD.BackgroundColor, false)
	vector.StrokeLine(screen, 0, float32(barH), float32(width), float32(barH), 2, cfg.HUD.BorderColor, false)

	text.Draw(screen, hudLine(e), fonts.Regular.Get(), int(cfg.HUD.TextMargin), int(barH)-cfg.HUD.TextBaseline, cfg.HUD.TextColor)
}

func hudLine(e *ecs.ECS) string {
	if EditorActive(e) {
		tool := components.TileGround
		if entry, ok := components.Editor.First(e.World); ok {
			tool = components.Editor.Get(entry).SelectedTool
		}
		return fmt.Sprintf("EDITOR MODE | Tool: %s | WASD: Pan | Click: Place | R-Click: Delete | E: Test | TAB: Switch Tool", tool)
	}
	return "GAMEPLAY | Arrows: Move | Space: Jump | E: Edit Mode | ESC: Menu"
}
