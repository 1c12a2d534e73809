package components

import (
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelEditorData is the level editor's working copy.
type LevelEditorData struct {
	ID     string
	Draft  *leveldata.Draft
	PanX   float64
	Brush  leveldata.Code
	Status string // last save/load result, shown in the corner
}

var LevelEditor = donburi.NewComponentType[LevelEditorData]()

// OverworldEditorData holds the overworld editor's view state. The map
// being edited is the play context's.
type OverworldEditorData struct {
	PanX, PanY float64
	Brush      string
	Status     string
}

var OverworldEditor = donburi.NewComponentType[OverworldEditorData]()
