package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX conventions: tiles live on a layer named "tiles" and every tileset
// tile carries a string property "code" holding its tile character.
const (
	tmxLayer        = "tiles"
	tmxCodeProperty = "code"
)

// LoadTMX converts a Tiled map into a grid. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: %w: tiles are %dx%d", tmxPath, ErrMalformedLevel, levelMap.TileWidth, levelMap.TileHeight)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tmxLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: %w: no %q layer", tmxPath, ErrMalformedLevel, tmxLayer)
	}

	d := NewDraft(levelMap.Height, levelMap.Width, float64(levelMap.TileWidth))
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile %d,%d: %w", tmxPath, y, x, err)
			}
			code := tilesetTile.Properties.GetString(tmxCodeProperty)
			if len(code) != 1 {
				return nil, fmt.Errorf("load TMX %s: %w: tile %d,%d has code %q", tmxPath, ErrMalformedLevel, y, x, code)
			}
			if err := d.Set(y, x, Code(code[0])); err != nil {
				return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
			}
		}
	}
	return d.Build(), nil
}

// LoadAllTMX discovers all .tmx files in levelsDir within fsys and returns
// the grids keyed by stem name (the level id, e.g. "1-1") plus a sorted list
// of names.
func LoadAllTMX(fsys fs.FS, levelsDir string) (map[string]*Grid, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	levels := make(map[string]*Grid, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		g, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = g
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
