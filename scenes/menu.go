package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshdevopscatftw/moondust/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the main menu
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewEpisodeSelectScene(ms.sceneChanger))
		},
		func() {
			ms.sceneChanger.ChangeScene(NewLevelScene(ms.sceneChanger, nil, true))
		},
		func() {
			ms.sceneChanger.Quit()
		},
	)
}
