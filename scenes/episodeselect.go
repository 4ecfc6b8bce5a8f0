package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2

	"github.com/zshdevopscatftw/moondust/assets"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/fonts"
	"github.com/zshdevopscatftw/moondust/systems"
)

// EpisodeSelectScene lists the episode catalog for keyboard selection.
type EpisodeSelectScene struct {
	sceneChanger SceneChanger
	selected     int
}

// NewEpisodeSelectScene creates the episode list, restoring the last
// selected episode when one was saved.
func NewEpisodeSelectScene(sc SceneChanger) *EpisodeSelectScene {
	selected := 0
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if saved.EpisodeIndex >= 0 && saved.EpisodeIndex < len(assets.Episodes) {
			selected = saved.EpisodeIndex
		}
	}
	return &EpisodeSelectScene{sceneChanger: sc, selected: selected}
}

func (es *EpisodeSelectScene) Update() {
	n := len(assets.Episodes)

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		es.selected = (es.selected - 1 + n) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		es.selected = (es.selected + 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		_ = systems.UpdateSettings(func(s *systems.SavedSettings) {
			s.EpisodeIndex = es.selected
		})
		episode := &assets.Episodes[es.selected]
		es.sceneChanger.ChangeScene(NewLevelScene(es.sceneChanger, episode, false))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger))
	}
}

func (es *EpisodeSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.EpisodeSelect.BackgroundColor)

	titleFont := fonts.Title.Get()
	normalFont := fonts.Regular.Get()

	text.Draw(screen, "SELECT EPISODE", titleFont, 50, int(cfg.EpisodeSelect.TitleY), cfg.EpisodeSelect.TitleColor)

	for i, ep := range assets.Episodes {
		y := int(cfg.EpisodeSelect.ListStartY + float64(i)*cfg.EpisodeSelect.ListItemHeight)

		label := fmt.Sprintf("  %s", ep.Name)
		clr := cfg.EpisodeSelect.TextColorNormal
		if i == es.selected {
			label = fmt.Sprintf("> %s", ep.Name)
			clr = cfg.EpisodeSelect.TextColorSelected
		}
		text.Draw(screen, label, normalFont, 100, y, clr)

		if i == es.selected {
			text.Draw(screen, ep.Desc, normalFont, 400, y, cfg.EpisodeSelect.DescColor)
		}
	}

	hint := "[UP/DOWN] Select   [ENTER] Start Game   [ESC] Back"
	text.Draw(screen, hint, normalFont, 50, cfg.C.Height-50, cfg.EpisodeSelect.TitleColor)
}
