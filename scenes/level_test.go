package scenes

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNav records stack calls without holding any scenes.
type recordingNav struct {
	popTo []cfg.ModeID
	calls int
}

func (n *recordingNav) Push(Scene) error    { n.calls++; return nil }
func (n *recordingNav) Pop() error          { n.calls++; return nil }
func (n *recordingNav) Replace(Scene) error { n.calls++; return nil }
func (n *recordingNav) PopTo(id cfg.ModeID) error {
	n.calls++
	n.popTo = append(n.popTo, id)
	return nil
}

func actions(ids ...cfg.ActionID) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for _, id := range ids {
		pressed[id] = true
	}
	return pressed
}

func newTestLevelScene(t *testing.T) (*LevelScene, *recordingNav) {
	t.Helper()
	nav := &recordingNav{}
	ctx := &Context{
		Play:   state.NewPlay(nil, nil),
		Levels: state.NewLevels(leveldata.MemStore{}, nil, rand.New(rand.NewSource(1))),
		Files:  leveldata.MemStore{},
		Nav:    nav,
		RNG:    rand.New(rand.NewSource(1)),
	}
	ls, err := NewLevelScene(ctx)
	require.NoError(t, err)
	ls.once.Do(ls.configure)
	ls.dt = 1.0 / 60
	return ls, nav
}

func TestLevelSceneEscapeReturnsToWorldMap(t *testing.T) {
	ls, nav := newTestLevelScene(t)

	ls.handle(actions())
	assert.Zero(t, nav.calls)

	ls.handle(actions(cfg.ActionMenuBack))
	assert.Equal(t, []cfg.ModeID{cfg.ModeOverworld}, nav.popTo)
}

func TestLevelSceneIgnoresEscapeHeldOnEntry(t *testing.T) {
	ls, nav := newTestLevelScene(t)

	// still held from the world map's key press
	ls.handle(actions(cfg.ActionMenuBack))
	ls.handle(actions(cfg.ActionMenuBack))
	assert.Zero(t, nav.calls)
}
