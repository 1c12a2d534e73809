package level

import (
	"strings"
	"testing"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/state"
	"github.com/automoto/koopa/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

func keys(ids ...cfg.ActionID) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for _, id := range ids {
		pressed[id] = true
	}
	return pressed
}

func mustGrid(t *testing.T, rows ...string) *leveldata.Grid {
	t.Helper()
	g, err := leveldata.NewGrid(rows, 16)
	require.NoError(t, err)
	return g
}

// corridor is a three-row level: start marker in column 1 above a full
// ground row.
func corridor(t *testing.T, width int) *leveldata.Grid {
	return mustGrid(t,
		strings.Repeat(" ", width),
		" S"+strings.Repeat(" ", width-2),
		strings.Repeat("G", width),
	)
}

func newSession(t *testing.T, id string, g *leveldata.Grid, play *state.Play, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(id, g, play, opts...)
	require.NoError(t, err)
	return s
}

func enemies(s *Session) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(s.World(), func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// flagRun is the generator's frame with nothing but ground: 20 rows, ground
// on row 15, start at column 5 and flag at column 95 on row 14.
func flagRun(t *testing.T) *leveldata.Grid {
	d := leveldata.NewDraft(20, 100, 16)
	d.Fill(15, leveldata.Ground)
	require.NoError(t, d.Set(14, 5, leveldata.Start))
	require.NoError(t, d.Set(14, 95, leveldata.Flag))
	return d.Build()
}

func TestSessionRunsToTheFlagOnce(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "spatial index"},
		{name: "linear scan", opts: []Option{WithQuery(flagRun(t))}},
	}

	// ninety tiles at the walking speed of two units per frame
	const reachWithin = (90 * 16) / (2 * 60.0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			play := state.NewPlay(nil, nil)
			s := newSession(t, "1-1", flagRun(t), play, tt.opts...)

			endings, advances := 0, 0
			endedAt, advancedAt := -1.0, -1.0
			phase := s.Level().Phase
			elapsed := 0.0
			for i := 0; i < 1500; i++ {
				out := s.Update(keys(cfg.ActionMoveRight), frame)
				elapsed += frame
				if p := s.Level().Phase; p != phase {
					if p == components.PhaseEnding {
						endings++
						endedAt = elapsed
					}
					phase = p
				}
				switch out {
				case OutcomeNone:
				case OutcomeNextLevel:
					advances++
					advancedAt = elapsed
				default:
					t.Fatalf("unexpected outcome %v at frame %d", out, i)
				}
			}

			assert.Equal(t, 1, endings)
			assert.Equal(t, 1, advances)
			assert.Positive(t, endedAt)
			assert.LessOrEqual(t, endedAt, reachWithin)
			assert.InDelta(t, cfg.Level.EndDuration, advancedAt-endedAt, 2*frame)
			assert.Equal(t, components.PhaseDone, s.Level().Phase)
			assert.Equal(t, "1-2", play.LevelID())
			assert.Greater(t, s.PlayerBody().X, 1500.0)
			assert.Equal(t, cfg.Player.StartingLives, play.Lives)
		})
	}
}

func TestSessionSwimmerFallsToTheGround(t *testing.T) {
	g := mustGrid(t,
		"            ",
		" S        f ",
		"            ",
		"            ",
		"GGGGGGGGGGGG",
	)
	s := newSession(t, "3-1", g, state.NewPlay(nil, nil))
	for i := 0; i < 120; i++ {
		s.Update(keys(), frame)
	}

	fish := enemies(s)
	require.Len(t, fish, 1)
	body := components.Body.Get(fish[0])
	assert.LessOrEqual(t, body.Bottom(), 64.0)
	assert.GreaterOrEqual(t, body.Bottom(), 63.0)
	assert.False(t, body.OnGround)
}

func TestSessionWorldAndGameComplete(t *testing.T) {
	play := state.NewPlay(nil, nil)
	play.Level = cfg.Level.LevelsPerWorld
	s := newSession(t, play.LevelID(), corridor(t, 10), play)

	var out Outcome
	for i := 0; i < 400 && out == OutcomeNone; i++ {
		out = s.Update(keys(cfg.ActionMoveRight), frame)
	}
	assert.Equal(t, OutcomeWorldComplete, out)
	assert.Equal(t, 2, play.Unlocked())

	play.Progress.Slots[play.Slot].Unlocked = cfg.Level.Worlds
	require.NoError(t, play.StartWorld(cfg.Level.Worlds))
	play.Level = cfg.Level.LevelsPerWorld
	s = newSession(t, play.LevelID(), corridor(t, 10), play)
	out = OutcomeNone
	for i := 0; i < 400 && out == OutcomeNone; i++ {
		out = s.Update(keys(cfg.ActionMoveRight), frame)
	}
	assert.Equal(t, OutcomeGameComplete, out)
}

func TestSessionSpawnsActorsFromMarkers(t *testing.T) {
	g := mustGrid(t,
		"          ",
		" S g k f s",
		"GGGGGGGGGG",
	)
	s := newSession(t, "7-1", g, state.NewPlay(nil, nil))

	kinds := map[components.Kind]bool{}
	for _, e := range enemies(s) {
		kind := components.Actor.Get(e).Kind
		kinds[kind] = true
		body := components.Body.Get(e)
		assert.Equal(t, 16.0, body.Y)
		assert.Equal(t, kind == components.KindKoopa, components.Enemy.Get(e).Shell)
	}
	assert.Len(t, kinds, 4)

	assert.Equal(t, 16.0, s.PlayerBody().X)
	assert.Equal(t, "LAVA CASTLE", s.Level().Theme.Name)
}

func TestSessionPatrollerKeepsItsHeadingFromSpawn(t *testing.T) {
	g := mustGrid(t,
		"          ",
		" S      g ",
		"GGGGGGGGGG",
	)
	s := newSession(t, "1-1", g, state.NewPlay(nil, nil))
	for i := 0; i < 30; i++ {
		s.Update(keys(), frame)
	}

	goomba := enemies(s)
	require.Len(t, goomba, 1)
	body := components.Body.Get(goomba[0])
	assert.Less(t, components.Enemy.Get(goomba[0]).Direction, 0.0)
	assert.InDelta(t, 128-15, body.X, 1e-9)
	assert.True(t, body.OnGround)
}

func TestSessionDefaultSpawn(t *testing.T) {
	s := newSession(t, "1-1", mustGrid(t, "GGGG"), state.NewPlay(nil, nil))
	assert.Equal(t, cfg.Level.DefaultSpawnX, s.PlayerBody().X)
	assert.Equal(t, cfg.Level.DefaultSpawnY, s.PlayerBody().Y)

	_, err := NewSession("castle", mustGrid(t, "GGGG"), state.NewPlay(nil, nil))
	assert.Error(t, err)
}

func TestSessionStomp(t *testing.T) {
	g := mustGrid(t,
		"   S      ",
		"          ",
		"   g      ",
		"GGGGGGGGGG",
	)
	play := state.NewPlay(nil, nil)
	s := newSession(t, "1-1", g, play)

	for i := 0; i < 20; i++ {
		require.Equal(t, OutcomeNone, s.Update(keys(), frame))
	}

	assert.Equal(t, cfg.Player.StompBonus, play.Score)
	assert.Equal(t, cfg.Player.StartingLives, play.Lives)
	for _, e := range enemies(s) {
		assert.False(t, components.Body.Get(e).Active)
	}
}

func TestSessionDamage(t *testing.T) {
	g := mustGrid(t,
		"          ",
		" S   g    ",
		"GGGGGGGGGG",
	)

	t.Run("small player loses a life and respawns", func(t *testing.T) {
		play := state.NewPlay(nil, nil)
		s := newSession(t, "1-1", g, play)

		for i := 0; i < 300 && play.Lives == cfg.Player.StartingLives; i++ {
			s.Update(keys(), frame)
		}
		assert.Equal(t, cfg.Player.StartingLives-1, play.Lives)
		assert.Equal(t, 16.0, s.PlayerBody().X)
		assert.Equal(t, 16.0, s.PlayerBody().Y)
		assert.Positive(t, s.Player().Invincible)
	})

	t.Run("big player shrinks", func(t *testing.T) {
		play := state.NewPlay(nil, nil)
		play.Size = state.SizeBig
		s := newSession(t, "1-1", g, play)

		for i := 0; i < 300 && play.Size == state.SizeBig; i++ {
			s.Update(keys(), frame)
		}
		assert.Equal(t, state.SizeSmall, play.Size)
		assert.Equal(t, cfg.Player.StartingLives, play.Lives)
		assert.InDelta(t, cfg.Player.InvincibleTime, s.Player().Invincible, 1e-9)
		assert.Greater(t, s.PlayerBody().X, 0.0)
	})
}

func TestSessionFallingIsGameOverWhenLivesRunOut(t *testing.T) {
	play := state.NewPlay(nil, nil)
	s := newSession(t, "1-1", mustGrid(t, "S       ", "        "), play)

	var out Outcome
	frames := 0
	for ; frames < 200 && out == OutcomeNone; frames++ {
		out = s.Update(keys(), frame)
	}
	assert.Equal(t, OutcomeGameOver, out)
	assert.Equal(t, 0, play.Lives)
	assert.Less(t, frames, 60)
}

func TestSessionTimeOut(t *testing.T) {
	play := state.NewPlay(nil, nil)
	s := newSession(t, "1-1", corridor(t, 50), play)
	s.Level().Timer = frame / 2

	assert.Equal(t, OutcomeNone, s.Update(keys(), frame))
	assert.Equal(t, cfg.Player.StartingLives-1, play.Lives)
	assert.Equal(t, cfg.Level.TimeLimit, s.Level().Timer)
}

func TestSessionQuestionBlock(t *testing.T) {
	g := mustGrid(t,
		"  ?       ",
		"          ",
		"  S       ",
		"GGGGGGGGGG",
	)

	jump := func(s *Session) {
		s.Update(keys(), frame)
		s.Update(keys(cfg.ActionJump), frame)
		for i := 0; i < 60; i++ {
			s.Update(keys(), frame)
		}
	}

	t.Run("small player powers up once", func(t *testing.T) {
		play := state.NewPlay(nil, nil)
		s := newSession(t, "1-1", g, play)

		jump(s)
		assert.Equal(t, state.SizeBig, play.Size)
		assert.Equal(t, cfg.Level.PowerUpScore, play.Score)
		assert.Equal(t, leveldata.Block, s.Level().TileAt(0, 2))
		assert.Equal(t, leveldata.Question, s.Level().Grid.At(0, 2), "grid is unchanged")

		jump(s)
		assert.Equal(t, cfg.Level.PowerUpScore, play.Score, "bumped blocks are spent")
	})

	t.Run("big player gets a coin", func(t *testing.T) {
		play := state.NewPlay(nil, nil)
		play.Size = state.SizeBig
		s := newSession(t, "1-1", g, play)

		jump(s)
		assert.Equal(t, 1, play.Coins)
		assert.Equal(t, 1, s.Level().Coins)
		assert.Equal(t, cfg.Level.CoinScore, play.Score)
	})
}

func TestSessionCameraFollows(t *testing.T) {
	s := newSession(t, "1-1", corridor(t, 100), state.NewPlay(nil, nil))
	assert.Equal(t, 0.0, s.Camera().X)

	for i := 0; i < 400; i++ {
		s.Update(keys(cfg.ActionMoveRight), frame)
	}
	cam := s.Camera().X
	assert.Positive(t, cam)
	assert.InDelta(t, s.PlayerBody().X-float64(cfg.C.Width)/2, cam, 25)
}

func TestSessionQueriesAgree(t *testing.T) {
	// the default spatial index and a linear scan drive identical sessions
	g := mustGrid(t,
		"               ",
		"      PPP      ",
		" S  g    k   B ",
		"GGGGGGG  GGGGGG",
		"BBBBBBB  BBBBBB",
	)
	a := newSession(t, "2-1", g, state.NewPlay(nil, nil))
	b := newSession(t, "2-1", g, state.NewPlay(nil, nil), WithQuery(g))

	for i := 0; i < 600; i++ {
		in := keys(cfg.ActionMoveRight)
		if i%40 == 0 {
			in = keys(cfg.ActionMoveRight, cfg.ActionJump)
		}
		require.Equal(t, a.Update(in, frame), b.Update(in, frame))
		require.Equal(t, *a.PlayerBody(), *b.PlayerBody(), "frame %d", i)
	}
}
