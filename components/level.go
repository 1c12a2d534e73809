package components

import (
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/yohamta/donburi"
)

// Phase is the level session's progression state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnding
	PhaseDone
)

// LevelData is the singleton describing the level a world simulates.
type LevelData struct {
	ID           string
	World, Level int
	Grid         *leveldata.Grid
	Theme        cfg.Theme

	Timer    float64 // seconds left on the level clock
	Coins    int     // coins collected in this level
	Phase    Phase
	EndTimer float64

	SpawnX, SpawnY float64

	// Bumped question blocks are drawn as plain blocks. The grid itself
	// never changes.
	Bumped map[leveldata.Cell]bool
}

var Level = donburi.NewComponentType[LevelData]()

// TileAt returns the code shown at a cell, accounting for bumped blocks.
func (l *LevelData) TileAt(row, col int) leveldata.Code {
	code := l.Grid.At(row, col)
	if code == leveldata.Question && l.Bumped[leveldata.Cell{Row: row, Col: col}] {
		return leveldata.Block
	}
	return code
}
