package systems

import (
	"testing"

	"github.com/automoto/koopa/components"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLevelEditor(rows, cols int) *components.LevelEditorData {
	return &components.LevelEditorData{
		ID:    "1-1",
		Draft: leveldata.NewDraft(rows, cols, 16),
		Brush: leveldata.Ground,
	}
}

func TestPickBrush(t *testing.T) {
	b, ok := PickBrush(leveldata.Codes, 1)
	require.True(t, ok)
	assert.Equal(t, leveldata.Ground, b)

	_, ok = PickBrush(leveldata.Codes, 0)
	assert.False(t, ok)
	_, ok = PickBrush(leveldata.OverworldTypes, len(leveldata.OverworldTypes)+1)
	assert.False(t, ok)

	ow, ok := PickBrush(leveldata.OverworldTypes, 4)
	require.True(t, ok)
	assert.Equal(t, leveldata.TileWater, ow)
}

func TestNextLevelBrushWraps(t *testing.T) {
	ed := newLevelEditor(2, 2)
	for range leveldata.Codes {
		NextLevelBrush(ed)
	}
	assert.Equal(t, leveldata.Ground, ed.Brush)

	ed.Brush = leveldata.Code('Z')
	NextLevelBrush(ed)
	assert.Equal(t, leveldata.Codes[0], ed.Brush)
}

func TestPaintLevel(t *testing.T) {
	ed := newLevelEditor(4, 40)

	assert.True(t, PaintLevel(ed, 20, 40, 16, leveldata.Block))
	assert.Equal(t, leveldata.Block, ed.Draft.At(2, 1))
	assert.False(t, PaintLevel(ed, 20, 40, 16, leveldata.Block), "same tile again")

	ed.PanX = 160
	assert.True(t, PaintLevel(ed, 0, 0, 16, leveldata.Question))
	assert.Equal(t, leveldata.Question, ed.Draft.At(0, 10))

	assert.True(t, PaintLevel(ed, 0, 0, 16, leveldata.Empty), "erase")
	assert.Equal(t, leveldata.Empty, ed.Draft.At(0, 10))

	// below the level and left of it
	assert.False(t, PaintLevel(ed, 0, 200, 16, leveldata.Ground))
	ed.PanX = 0
	assert.False(t, PaintLevel(ed, -5, 0, 16, leveldata.Ground))
}

func TestPanLevel(t *testing.T) {
	ed := newLevelEditor(4, 40) // 640 px wide

	PanLevel(ed, -10, 16, 256)
	assert.Equal(t, 0.0, ed.PanX)

	PanLevel(ed, 1000, 16, 256)
	assert.Equal(t, 384.0, ed.PanX)

	// a level narrower than the view never scrolls
	narrow := newLevelEditor(4, 10)
	PanLevel(narrow, 50, 16, 256)
	assert.Equal(t, 0.0, narrow.PanX)
}

func TestPaintOverworld(t *testing.T) {
	ow := leveldata.DefaultOverworld()
	ed := &components.OverworldEditorData{Brush: leveldata.TileLevel}

	require.True(t, PaintOverworld(ow, ed, 30, 10, 24, "2-1", false))
	assert.Equal(t, leveldata.TileLevel, ow[0][1].Type)
	require.NotNil(t, ow[0][1].Level)
	assert.Equal(t, "2-1", *ow[0][1].Level)

	ed.PanX, ed.PanY = 24, 48
	require.True(t, PaintOverworld(ow, ed, 0, 0, 24, "2-1", true))
	assert.Equal(t, leveldata.TileEmpty, ow[2][1].Type)

	assert.False(t, PaintOverworld(ow, ed, 200, 0, 24, "2-1", false))
}

func TestPanOverworld(t *testing.T) {
	ed := &components.OverworldEditorData{}
	PanOverworld(ed, -5, 5, 256, 240)
	assert.Equal(t, 0.0, ed.PanX)
	assert.Equal(t, 5.0, ed.PanY)

	PanOverworld(ed, 300, 300, 256, 240)
	assert.Equal(t, 256.0, ed.PanX)
	assert.Equal(t, 240.0, ed.PanY)
}
