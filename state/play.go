// Package state holds the play context that survives between level
// sessions, save-slot progress and the per-process level cache.
package state

import (
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
)

var ErrLocked = errors.New("world is locked")

// Size is the player's power-up state.
type Size string

const (
	SizeSmall Size = "small"
	SizeBig   Size = "big"
)

// Progression is what finishing a level leads to.
type Progression int

const (
	ProgressNextLevel Progression = iota
	ProgressWorldComplete
	ProgressGameComplete
)

// Play is the context threaded through every mode. Nothing else crosses
// a level session boundary.
type Play struct {
	Score int
	Coins int
	Lives int
	Size  Size

	World int
	Level int

	Slot     int
	Progress Progress

	Overworld *leveldata.Overworld

	saves leveldata.Store
}

// NewPlay loads progress from saves. A missing or unreadable save starts
// fresh; the failure is logged.
func NewPlay(saves leveldata.Store, ow *leveldata.Overworld) *Play {
	if ow == nil {
		ow = leveldata.DefaultOverworld()
	}
	p := &Play{
		Overworld: ow,
		saves:     saves,
		Progress:  NewProgress(),
	}
	if saves != nil {
		progress, err := LoadProgress(saves)
		switch {
		case errors.Is(err, leveldata.ErrNotFound):
		case err != nil:
			log.Printf("Warning: Could not load progress: %v", err)
		default:
			p.Progress = progress
		}
	}
	p.Reset()
	p.useSlot(0)
	return p
}

// Reset restores score, lives and size for a fresh run.
func (p *Play) Reset() {
	p.Score = 0
	p.Coins = 0
	p.Lives = cfg.Player.StartingLives
	p.Size = SizeSmall
}

// SelectSlot makes slot i current and resumes its world.
func (p *Play) SelectSlot(i int) error {
	if i < 0 || i >= SlotCount {
		return fmt.Errorf("select slot %d: %w", i, leveldata.ErrOutOfBounds)
	}
	p.useSlot(i)
	return nil
}

func (p *Play) useSlot(i int) {
	p.Slot = i
	p.World = p.Progress.Slots[i].World
	p.Level = 1
}

// Unlocked is the highest world the current slot may enter.
func (p *Play) Unlocked() int {
	return p.Progress.Slots[p.Slot].Unlocked
}

// StartWorld begins world w at its first level and remembers it in the slot.
func (p *Play) StartWorld(w int) error {
	if w < 1 || w > cfg.Level.Worlds {
		return fmt.Errorf("start world %d: %w", w, leveldata.ErrOutOfBounds)
	}
	if w > p.Unlocked() {
		return fmt.Errorf("start world %d: %w", w, ErrLocked)
	}
	p.World = w
	p.Level = 1
	p.Progress.Slots[p.Slot].World = w
	p.save()
	return nil
}

// LevelID returns the current level's id, e.g. "1-1".
func (p *Play) LevelID() string {
	return leveldata.LevelID(p.World, p.Level)
}

// Advance moves past the current level. Finishing a world's last level
// unlocks the next world; finishing the last world completes the game.
func (p *Play) Advance() Progression {
	if p.Level < cfg.Level.LevelsPerWorld {
		p.Level++
		return ProgressNextLevel
	}
	if p.World >= cfg.Level.Worlds {
		return ProgressGameComplete
	}

	slot := &p.Progress.Slots[p.Slot]
	slot.Unlocked = max(slot.Unlocked, p.World+1)
	p.save()
	return ProgressWorldComplete
}

// Hurt applies one hit. A big player shrinks; a small one loses a life.
// It reports whether a life was lost.
func (p *Play) Hurt() bool {
	if p.Size == SizeBig {
		p.Size = SizeSmall
		return false
	}
	p.LoseLife()
	return true
}

// LoseLife takes a life and the power-up.
func (p *Play) LoseLife() {
	p.Lives--
	p.Size = SizeSmall
}

// GameOver reports whether no lives are left.
func (p *Play) GameOver() bool {
	return p.Lives <= 0
}

// BumpQuestion applies a question block's reward: a power-up when small,
// a coin when big.
func (p *Play) BumpQuestion() {
	if p.Size == SizeSmall {
		p.Size = SizeBig
		p.Score += cfg.Level.PowerUpScore
		return
	}
	p.Coins++
	p.Score += cfg.Level.CoinScore
}

func (p *Play) save() {
	if p.saves == nil {
		return
	}
	if err := SaveProgress(p.saves, p.Progress); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
