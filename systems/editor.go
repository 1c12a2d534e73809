package systems

import (
	"math"

	"github.com/automoto/koopa/components"
	"github.com/automoto/koopa/shared/gamemath"
	"github.com/automoto/koopa/shared/leveldata"
)

// PickBrush returns palette entry n, counted from 1 like the digit keys.
func PickBrush[T any](palette []T, n int) (T, bool) {
	var zero T
	if n < 1 || n > len(palette) {
		return zero, false
	}
	return palette[n-1], true
}

// NextLevelBrush cycles the level editor brush through leveldata.Codes.
func NextLevelBrush(ed *components.LevelEditorData) {
	for i, c := range leveldata.Codes {
		if c == ed.Brush {
			ed.Brush = leveldata.Codes[(i+1)%len(leveldata.Codes)]
			return
		}
	}
	ed.Brush = leveldata.Codes[0]
}

// screenCell maps a screen point to a cell, given the view's pan.
func screenCell(sx, sy, panX, panY, tileSize float64) (row, col int) {
	col = int(math.Floor((sx + panX) / tileSize))
	row = int(math.Floor((sy + panY) / tileSize))
	return row, col
}

// PaintLevel writes code at the cell under the screen point. Points outside
// the level are ignored. It reports whether a tile changed.
func PaintLevel(ed *components.LevelEditorData, sx, sy, tileSize float64, code leveldata.Code) bool {
	row, col := screenCell(sx, sy, ed.PanX, 0, tileSize)
	if ed.Draft.At(row, col) == code {
		return false
	}
	return ed.Draft.Set(row, col, code) == nil
}

// PanLevel scrolls the level editor, keeping the view inside the level.
func PanLevel(ed *components.LevelEditorData, dx, tileSize, viewportWidth float64) {
	maxPan := float64(ed.Draft.Cols())*tileSize - viewportWidth
	ed.PanX = gamemath.Clamp(ed.PanX+dx, 0, maxPan)
}

// PaintOverworld sets the tile under the screen point to the brush, or
// clears it when erase is set. Points outside the map are ignored.
func PaintOverworld(ow *leveldata.Overworld, ed *components.OverworldEditorData, sx, sy, tileSize float64, defaultLevel string, erase bool) bool {
	row, col := screenCell(sx, sy, ed.PanX, ed.PanY, tileSize)
	if erase {
		return ow.Clear(row, col) == nil
	}
	return ow.Paint(row, col, ed.Brush, defaultLevel) == nil
}

// PanOverworld scrolls the overworld editor within [0, maxX] x [0, maxY].
func PanOverworld(ed *components.OverworldEditorData, dx, dy, maxX, maxY float64) {
	ed.PanX = gamemath.Clamp(ed.PanX+dx, 0, maxX)
	ed.PanY = gamemath.Clamp(ed.PanY+dy, 0, maxY)
}
