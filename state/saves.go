package state

import (
	"log"

	"github.com/automoto/koopa/shared/leveldata"
	"github.com/quasilyte/gdata"
)

// AppName keys the per-user save location.
const AppName = "koopa"

// OpenSaves opens the per-user save store for progress. When the platform
// store is unavailable progress lives in memory for this run only.
func OpenSaves() leveldata.Store {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return leveldata.MemStore{}
	}
	return m
}
