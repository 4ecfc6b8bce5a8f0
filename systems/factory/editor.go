package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/archetypes"
	"github.com/zshdevopscatftw/moondust/components"
)

// CreateEditor spawns the editor state entity. The editor starts inactive
// with the first tool selected.
func CreateEditor(ecs *ecs.ECS) *donburi.Entry {
	editor := archetypes.Editor.Spawn(ecs)
	components.Editor.SetValue(editor, components.EditorData{
		SelectedTool: components.TileGround,
	})
	return editor
}
