package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// UpdateModeToggle flips between gameplay and editor mode. The level
// state persists across the switch, so the editor doubles as a live
// test loop.
func UpdateModeToggle(e *ecs.ECS) {
	if !Action(e, cfg.ActionToggleEditor).JustPressed {
		return
	}
	entry, ok := components.Editor.First(e.World)
	if !ok {
		return
	}
	editor := components.Editor.Get(entry)
	editor.Active = !editor.Active
}

// EditorActive reports whether the session is currently in editor mode.
func EditorActive(e *ecs.ECS) bool {
	entry, ok := components.Editor.First(e.World)
	if !ok {
		return false
	}
	return components.Editor.Get(entry).Active
}

// WithGameplayMode wraps a system to run only during live gameplay.
func WithGameplayMode(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if EditorActive(e) {
			return
		}
		system(e)
	}
}

// WithEditorMode wraps a system to run only while the editor is active.
func WithEditorMode(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !EditorActive(e) {
			return
		}
		system(e)
	}
}
