package state

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
)

const (
	SlotCount   = 3
	ProgressKey = "progress"
)

// Slot is one save file.
type Slot struct {
	World    int `json:"world"`
	Unlocked int `json:"unlocked"`
}

type Progress struct {
	Slots [SlotCount]Slot `json:"slots"`
}

// NewProgress returns three slots at world 1.
func NewProgress() Progress {
	var p Progress
	for i := range p.Slots {
		p.Slots[i] = Slot{World: 1, Unlocked: 1}
	}
	return p
}

// normalize repairs slots written by older saves or edited by hand.
func (p *Progress) normalize() {
	for i := range p.Slots {
		s := &p.Slots[i]
		s.Unlocked = min(max(s.Unlocked, s.World, 1), cfg.Level.Worlds)
		s.World = min(max(s.World, 1), s.Unlocked)
	}
}

func LoadProgress(store leveldata.Store) (Progress, error) {
	data, err := store.LoadItem(ProgressKey)
	if err != nil {
		return Progress{}, fmt.Errorf("load progress: %w", err)
	}
	if data == nil {
		return Progress{}, fmt.Errorf("load progress: %w", leveldata.ErrNotFound)
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("load progress: %w: %v", leveldata.ErrMalformedLevel, err)
	}
	p.normalize()
	return p, nil
}

func SaveProgress(store leveldata.Store, p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := store.SaveItem(ProgressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
