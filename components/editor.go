package components

import "github.com/yohamta/donburi"

type EditorData struct {
	SelectedTool TileKind
	Active       bool
}

// CycleTool advances the selected tool, wrapping back to the first kind.
func (e *EditorData) CycleTool() {
	e.SelectedTool = (e.SelectedTool + 1) % TileKindCount
}

var Editor = donburi.NewComponentType[EditorData]()
