package scenes

import (
	"math/rand"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/input"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/state"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one mode on the game's stack. Only the top scene is updated
// and drawn.
type Scene interface {
	ID() cfg.ModeID
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// Navigator changes the scene stack. Every call is checked against the
// mode transition table.
type Navigator interface {
	Push(Scene) error
	Pop() error
	Replace(Scene) error
	PopTo(cfg.ModeID) error
}

// Context is what scenes share for the life of the process.
type Context struct {
	Play   *state.Play
	Levels *state.Levels
	// Files holds editor saves (level_<id>.json, overworld.json).
	Files leveldata.Store
	Nav   Navigator
	Input *input.Poller
	RNG   *rand.Rand
}

// keys tracks action edges for one scene. The first poll after the scene
// gains focus only primes the previous frame, so a key still held from the
// scene below does not fire again.
type keys struct {
	data   components.InputData
	primed bool
}

func (k *keys) update(p *input.Poller) {
	k.advance(p.Poll())
}

func (k *keys) advance(pressed [cfg.ActionCount]bool) {
	if !k.primed {
		k.data.Current = pressed
		k.primed = true
	}
	k.data.Advance(pressed)
}

func (k *keys) reset() { k.primed = false }

func (k *keys) pressed(id cfg.ActionID) bool {
	return k.data.Action(id).JustPressed
}

func (k *keys) held(id cfg.ActionID) bool {
	return k.data.Current[id]
}
