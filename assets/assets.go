package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/koopa/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels returns the hand-authored levels keyed by level id. They take
// precedence over generated ones.
func Levels() (map[string]*leveldata.Grid, error) {
	levels, _, err := leveldata.LoadAllTMX(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return levels, nil
}
