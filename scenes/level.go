package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/assets"
	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
	"github.com/zshdevopscatftw/moondust/systems"
	"github.com/zshdevopscatftw/moondust/systems/factory"
)

// LevelScene runs one level session. Gameplay and the editor share the
// session's world, so switching modes keeps every placed tile and the
// player's position intact.
type LevelScene struct {
	ecs           *ecs.ECS
	sceneChanger  SceneChanger
	episode       *assets.Episode
	startInEditor bool
	once          sync.Once
}

// NewLevelScene creates a level session. A nil episode starts from the
// bare floor template. startInEditor opens the session in editor mode.
func NewLevelScene(sc SceneChanger, episode *assets.Episode, startInEditor bool) *LevelScene {
	return &LevelScene{sceneChanger: sc, episode: episode, startInEditor: startInEditor}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	if systems.Action(ls.ecs, cfg.ActionMenuBack).JustPressed {
		ls.saveSession()
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger))
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateModeToggle)

	// Gameplay tick order is fixed: intent, gravity, collision, camera
	ecs.AddSystem(systems.WithGameplayMode(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayMode(systems.UpdateGravity))
	ecs.AddSystem(systems.WithGameplayMode(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayMode(systems.UpdateCamera))

	// Editor systems
	ecs.AddSystem(systems.WithEditorMode(systems.UpdateEditor))
	ecs.AddSystem(systems.WithEditorMode(systems.UpdateCameraPan))

	// Decorative tweens and space sync run in both modes
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdateObjects)

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawEditorOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ls.ecs = ecs
	ls.resetLevel()
}

// resetLevel rebuilds the session world: level descriptor, collision
// space, camera, editor state, floor row, starter tiles, then the player.
func (ls *LevelScene) resetLevel() {
	name := "Untitled"
	if ls.episode != nil {
		name = ls.episode.Name
	}
	factory.CreateLevel(ls.ecs, name)
	factory.CreateSpace(ls.ecs)
	factory.CreateCamera(ls.ecs)

	editor := factory.CreateEditor(ls.ecs)
	editorData := components.Editor.Get(editor)
	editorData.Active = ls.startInEditor
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if saved.SelectedTool >= 0 && saved.SelectedTool < int(components.TileKindCount) {
			editorData.SelectedTool = components.TileKind(saved.SelectedTool)
		}
	}

	// Base floor, one cell high along the level's bottom edge
	grid := cfg.World.GridSize
	floorY := cfg.World.LevelHeight - grid
	for x := 0.0; x < cfg.World.LevelWidth; x += grid {
		factory.CreateTile(ls.ecs, x, floorY, components.TileGround)
	}

	if ls.episode != nil && ls.episode.MapPath != "" {
		sm := assets.MustLoadStarterMap(ls.episode.MapPath)
		for _, t := range sm.Tiles {
			if t.Y >= floorY {
				continue
			}
			factory.CreateTile(ls.ecs, t.X, t.Y, t.Kind)
		}
	}

	factory.CreatePlayer(ls.ecs)
}

// saveSession persists the editor's selected tool for the next session.
func (ls *LevelScene) saveSession() {
	entry, ok := components.Editor.First(ls.ecs.World)
	if !ok {
		return
	}
	tool := int(components.Editor.Get(entry).SelectedTool)

	_ = systems.UpdateSettings(func(s *systems.SavedSettings) {
		s.SelectedTool = tool
	})
}
