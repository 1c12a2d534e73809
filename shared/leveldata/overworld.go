package leveldata

import (
	"encoding/json"
	"fmt"
)

// OverworldSize is the side length of the square overworld map.
const OverworldSize = 8

// OverworldKey is the store key of the overworld document (overworld.json).
const OverworldKey = "overworld"

// Overworld tile types.
const (
	TileEmpty  = "empty"
	TileGrass  = "grass"
	TileDesert = "desert"
	TileWater  = "water"
	TileLevel  = "level"
	TileCastle = "castle"
	TilePipe   = "pipe"
	TilePath   = "path"
	TileStart  = "start"
)

// OverworldTypes lists the editor palette in key order.
var OverworldTypes = []string{TileEmpty, TileGrass, TileDesert, TileWater, TileLevel, TileCastle, TilePipe, TilePath, TileStart}

// OverworldTile is one cell of the overworld map.
type OverworldTile struct {
	Type    string   `json:"type"`
	Level   *string  `json:"level"`
	Enemies []string `json:"enemies"`
}

// Overworld is the 8×8 map edited in the overworld editor.
type Overworld [OverworldSize][OverworldSize]OverworldTile

func emptyTile() OverworldTile {
	return OverworldTile{Type: TileEmpty, Enemies: []string{}}
}

// DefaultOverworld is a start tile and a path to the castle with world 1's
// four levels beside it.
func DefaultOverworld() *Overworld {
	var ow Overworld
	for r := range ow {
		for c := range ow[r] {
			ow[r][c] = emptyTile()
		}
	}
	for c := 1; c <= 5; c++ {
		ow[3][c].Type = TilePath
	}
	ow[3][0].Type = TileStart
	ow[3][6] = OverworldTile{Type: TileCastle, Level: strPtr("castle"), Enemies: []string{}}

	levels := []struct {
		row, col int
		id       string
	}{
		{2, 2, "1-1"}, {4, 2, "1-2"}, {2, 4, "1-3"}, {4, 4, "1-4"},
	}
	for _, l := range levels {
		ow[l.row][l.col] = OverworldTile{Type: TileLevel, Level: strPtr(l.id), Enemies: []string{}}
	}
	return &ow
}

func strPtr(s string) *string { return &s }

// Paint sets a cell's type. Level tiles get a default level id; anything
// else keeps whatever id the cell had.
func (ow *Overworld) Paint(row, col int, tileType, defaultLevel string) error {
	if row < 0 || row >= OverworldSize || col < 0 || col >= OverworldSize {
		return fmt.Errorf("%w: %d,%d", ErrOutOfBounds, row, col)
	}
	ow[row][col].Type = tileType
	if tileType == TileLevel {
		ow[row][col].Level = strPtr(defaultLevel)
	}
	return nil
}

// Clear resets a cell to empty with no level.
func (ow *Overworld) Clear(row, col int) error {
	if row < 0 || row >= OverworldSize || col < 0 || col >= OverworldSize {
		return fmt.Errorf("%w: %d,%d", ErrOutOfBounds, row, col)
	}
	ow[row][col].Type = TileEmpty
	ow[row][col].Level = nil
	return nil
}

// FirstLevel returns the level id of the first level tile in scan order.
func (ow *Overworld) FirstLevel() (string, bool) {
	for r := range ow {
		for c := range ow[r] {
			t := ow[r][c]
			if t.Type == TileLevel && t.Level != nil && *t.Level != "" {
				return *t.Level, true
			}
		}
	}
	return "", false
}

// Clone returns a deep copy.
func (ow *Overworld) Clone() *Overworld {
	out := *ow
	for r := range out {
		for c := range out[r] {
			if l := out[r][c].Level; l != nil {
				out[r][c].Level = strPtr(*l)
			}
			out[r][c].Enemies = append([]string{}, out[r][c].Enemies...)
		}
	}
	return &out
}

// MarshalOverworld encodes the map as an 8×8 JSON array of records.
func MarshalOverworld(ow *Overworld) ([]byte, error) {
	return json.Marshal(ow)
}

// UnmarshalOverworld decodes an overworld document, requiring exactly 8×8
// cells.
func UnmarshalOverworld(data []byte) (*Overworld, error) {
	var rows [][]OverworldTile
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	if len(rows) != OverworldSize {
		return nil, fmt.Errorf("%w: overworld has %d rows", ErrMalformedLevel, len(rows))
	}
	var ow Overworld
	for r, row := range rows {
		if len(row) != OverworldSize {
			return nil, fmt.Errorf("%w: overworld row %d has %d cells", ErrMalformedLevel, r, len(row))
		}
		for c, t := range row {
			if t.Enemies == nil {
				t.Enemies = []string{}
			}
			ow[r][c] = t
		}
	}
	return &ow, nil
}

// LoadOverworld reads the overworld document from store.
func LoadOverworld(store Store) (*Overworld, error) {
	data, err := store.LoadItem(OverworldKey)
	if err != nil {
		return nil, fmt.Errorf("load overworld: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("load overworld: %w", ErrNotFound)
	}
	ow, err := UnmarshalOverworld(data)
	if err != nil {
		return nil, fmt.Errorf("load overworld: %w", err)
	}
	return ow, nil
}

// SaveOverworld writes the overworld document to store.
func SaveOverworld(store Store, ow *Overworld) error {
	data, err := MarshalOverworld(ow)
	if err != nil {
		return fmt.Errorf("save overworld: %w", err)
	}
	if err := store.SaveItem(OverworldKey, data); err != nil {
		return fmt.Errorf("save overworld: %w", err)
	}
	return nil
}
