package state

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
)

// Levels caches one grid per level id for the life of the process. A miss
// tries a saved level file, then an embedded TMX level, then the generator.
type Levels struct {
	files    leveldata.Store
	embedded map[string]*leveldata.Grid
	rng      *rand.Rand
	cache    map[string]*leveldata.Grid
}

func NewLevels(files leveldata.Store, embedded map[string]*leveldata.Grid, rng *rand.Rand) *Levels {
	return &Levels{
		files:    files,
		embedded: embedded,
		rng:      rng,
		cache:    make(map[string]*leveldata.Grid),
	}
}

// Get returns the grid for id.
func (l *Levels) Get(id string) (*leveldata.Grid, error) {
	if g, ok := l.cache[id]; ok {
		return g, nil
	}

	g, err := l.Load(id)
	switch {
	case err == nil:
		l.cache[id] = g
		return g, nil
	case !errors.Is(err, leveldata.ErrNotFound):
		log.Printf("Warning: Could not load saved level %s: %v", id, err)
	}

	if g, ok := l.embedded[id]; ok {
		l.cache[id] = g
		return g, nil
	}

	world, level, err := leveldata.ParseLevelID(id)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}
	g, err = leveldata.Generate(world, level, l.rng)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}
	l.cache[id] = g
	return g, nil
}

// Load reads id's saved level file, bypassing the cache.
func (l *Levels) Load(id string) (*leveldata.Grid, error) {
	if l.files == nil {
		return nil, leveldata.ErrNotFound
	}
	return leveldata.LoadLevel(l.files, id, cfg.Physics.TileSize)
}

// Save writes g as id's level file and makes it the cached grid. The cache
// is left alone when the write fails.
func (l *Levels) Save(id string, g *leveldata.Grid) error {
	if l.files == nil {
		return errors.New("no level directory")
	}
	if err := leveldata.SaveLevel(l.files, id, g); err != nil {
		return err
	}
	l.cache[id] = g
	return nil
}
