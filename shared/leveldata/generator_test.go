package leveldata

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/koopa/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestGenerateShape(t *testing.T) {
	for world := 1; world <= cfg.Level.Worlds; world++ {
		for level := 1; level <= cfg.Level.LevelsPerWorld; level++ {
			g, err := Generate(world, level, testRNG())
			require.NoError(t, err)

			assert.Equal(t, 20, g.Rows())
			assert.Equal(t, 100, g.Cols())

			// exactly one start and one flag, on the row above the ground
			assert.Equal(t, 1, g.Count(Start))
			assert.Equal(t, 1, g.Count(Flag))
			assert.Equal(t, Start, g.At(14, 5))
			assert.Equal(t, Flag, g.At(14, 95))
		}
	}
}

func TestGenerateGround(t *testing.T) {
	g, err := Generate(1, 1, testRNG())
	require.NoError(t, err)

	for c := 0; c < g.Cols(); c++ {
		assert.Equal(t, Ground, g.At(15, c), "ground top at col %d", c)
		for r := 16; r < 20; r++ {
			// pipes sit on the ground, so fill rows stay pure block
			assert.Equal(t, Block, g.At(r, c), "fill at %d,%d", r, c)
		}
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	a, err := Generate(3, 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Generate(3, 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Strings(), b.Strings())

	c, err := Generate(3, 2, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	assert.NotEqual(t, a.Strings(), c.Strings())
}

func TestGenerateFeatureBands(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := Generate(2, 4, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				switch code := g.At(r, c); code {
				case Platform:
					assert.True(t, r >= 8 && r <= 12, "platform row %d", r)
				case Question:
					assert.True(t, r >= 5 && r <= 10, "question row %d", r)
				case Pipe:
					// pipes are at most four tall and stand on row 15
					assert.True(t, r >= 11 && r <= 14, "pipe row %d", r)
					below := g.At(r+1, c)
					assert.True(t, r == 14 || below == Pipe || below.Enemy(), "floating pipe at %d,%d", r, c)
				case Koopa:
					assert.Equal(t, 14, r)
				case Goomba, Fish, Spike:
					t.Fatalf("world 2 places only koopas, found %v", code)
				}
			}
		}
	}
}

func TestGenerateUsesThemeEnemy(t *testing.T) {
	tests := []struct {
		world int
		want  Code
	}{
		{1, Goomba},
		{2, Koopa},
		{3, Fish},
		{7, Spike},
	}
	for _, tt := range tests {
		g, err := Generate(tt.world, 1, testRNG())
		require.NoError(t, err)
		assert.Positive(t, g.Count(tt.want), "world %d", tt.world)
	}
}

// Placement order lets later features replace earlier ones. Every enemy band
// overlaps pipe columns, so over many seeds some enemy lands where a pipe
// top was and the pipe keeps a missing top tile.
func TestGenerateLaterFeaturesOverwrite(t *testing.T) {
	overwritten := false
	for seed := int64(0); seed < 200 && !overwritten; seed++ {
		g, err := Generate(1, 4, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		for c := 0; c < g.Cols(); c++ {
			if g.At(14, c) == Goomba && g.At(13, c) == Pipe {
				overwritten = true
			}
		}
	}
	assert.True(t, overwritten, "expected an enemy marker to replace a pipe tile")
}

func TestGenerateRejectsUnknownLevels(t *testing.T) {
	_, err := Generate(0, 1, testRNG())
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Generate(1, 5, testRNG())
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Generate(cfg.Level.Worlds+1, 1, testRNG())
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
