package config

// ModeID names a screen on the mode stack.
type ModeID int

const (
	ModeNone ModeID = iota
	ModeTitle
	ModeFileSelect
	ModeOverworld
	ModeLevel
	ModeGameOver
	ModeWin
	ModeOverworldEditor
	ModeLevelEditor
)

var modeNames = map[ModeID]string{
	ModeNone:            "none",
	ModeTitle:           "title",
	ModeFileSelect:      "file-select",
	ModeOverworld:       "overworld",
	ModeLevel:           "level",
	ModeGameOver:        "game-over",
	ModeWin:             "win",
	ModeOverworldEditor: "overworld-editor",
	ModeLevelEditor:     "level-editor",
}

func (m ModeID) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}
