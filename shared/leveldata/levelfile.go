package leveldata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LevelID formats a world/level pair as "<world>-<level>".
func LevelID(world, level int) string {
	return fmt.Sprintf("%d-%d", world, level)
}

// ParseLevelID splits "<world>-<level>".
func ParseLevelID(id string) (world, level int, err error) {
	w, l, ok := strings.Cut(id, "-")
	if !ok {
		return 0, 0, fmt.Errorf("level id %q: missing '-'", id)
	}
	if world, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("level id %q: %w", id, err)
	}
	if level, err = strconv.Atoi(l); err != nil {
		return 0, 0, fmt.Errorf("level id %q: %w", id, err)
	}
	return world, level, nil
}

// LevelKey is the store key of a level document; DirStore turns it into
// level_<id>.json.
func LevelKey(id string) string {
	return "level_" + id
}

// LoadLevel reads a level document (a JSON array of row strings).
func LoadLevel(store Store, id string, tileSize float64) (*Grid, error) {
	data, err := store.LoadItem(LevelKey(id))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", id, err)
	}
	if data == nil {
		return nil, fmt.Errorf("load level %s: %w", id, ErrNotFound)
	}
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("load level %s: %w: %v", id, ErrMalformedLevel, err)
	}
	g, err := NewGrid(rows, tileSize)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", id, err)
	}
	return g, nil
}

// SaveLevel writes a grid as a level document.
func SaveLevel(store Store, id string, g *Grid) error {
	data, err := json.Marshal(g.Strings())
	if err != nil {
		return fmt.Errorf("save level %s: %w", id, err)
	}
	if err := store.SaveItem(LevelKey(id), data); err != nil {
		return fmt.Errorf("save level %s: %w", id, err)
	}
	return nil
}
