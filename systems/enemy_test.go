package systems

import (
	"testing"

	"github.com/automoto/koopa/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatroller(direction float64) *components.EnemyData {
	return &components.EnemyData{Direction: direction, Speed: 0.5}
}

func TestPatrollerTurnsAtPlatformEdges(t *testing.T) {
	// five platform tiles spanning x 48..128
	s := NewStepper(mustGrid(t,
		"          ",
		"          ",
		"   PPPPP  ",
	))
	b := mustBody(t, 64, 16)
	b.OnGround = true
	e := newPatroller(-1)

	reversals := 0
	for i := 0; i < 2000; i++ {
		before := e.Direction
		UpdateEnemy(b, e, components.KindGoomba, s, frame)

		require.True(t, b.OnGround, "step %d", i)
		require.GreaterOrEqual(t, b.X, 47.0, "step %d", i)
		require.LessOrEqual(t, b.Right(), 129.0, "step %d", i)

		if e.Direction != before {
			reversals++
			atEdge := b.X <= 48 || b.Right() >= 128
			assert.True(t, atEdge, "reversed while supported at x=%v", b.X)
		}
	}
	assert.GreaterOrEqual(t, reversals, 10)
}

func TestPatrollerTurnsAtWalls(t *testing.T) {
	s := NewStepper(mustGrid(t,
		"B    B",
		"GGGGGG",
	))
	b := mustBody(t, 32, 0)
	b.OnGround = true
	e := newPatroller(1)

	sawRight, sawLeft := false, false
	for i := 0; i < 600; i++ {
		UpdateEnemy(b, e, components.KindKoopa, s, frame)
		require.GreaterOrEqual(t, b.X, 16.0)
		require.LessOrEqual(t, b.Right(), 80.0)
		sawRight = sawRight || b.Right() == 80
		sawLeft = sawLeft || b.X == 16
	}
	assert.True(t, sawRight)
	assert.True(t, sawLeft)
}

func TestSwimmerNeverGrounds(t *testing.T) {
	s := NewStepper(mustGrid(t,
		"          ",
		"          ",
		"GGGGGGGGGG",
	))
	b := mustBody(t, 100, 0)
	e := newPatroller(-1)

	for i := 0; i < 120; i++ {
		UpdateEnemy(b, e, components.KindFish, s, frame)
		require.False(t, b.OnGround, "step %d", i)
		require.LessOrEqual(t, b.Bottom(), 32.0, "sank into the ground at step %d", i)
	}
	assert.Less(t, b.X, 100.0, "drifts with its heading")
	// gravity pulls it down onto the ground row, where it keeps bobbing
	assert.GreaterOrEqual(t, b.Bottom(), 31.0)
	assert.Greater(t, e.SwimPhase, 1.9)
}

func TestSwimmerFallsInOpenWater(t *testing.T) {
	s := NewStepper(mustGrid(t, "          "))
	b := mustBody(t, 100, 100)
	e := newPatroller(1)

	for i := 0; i < 60; i++ {
		UpdateEnemy(b, e, components.KindFish, s, frame)
	}
	// the bob moves the body directly and leaves gravity's velocity alone
	assert.InDelta(t, 30.0, b.VY, 1e-9)
	assert.Greater(t, b.Y, 500.0)
	assert.Greater(t, b.X, 100.0)
}

func TestHazardStaysPut(t *testing.T) {
	s := NewStepper(mustGrid(t, "    ", "GGGG"))
	b := mustBody(t, 16, 0)
	e := newPatroller(-1)
	for i := 0; i < 60; i++ {
		UpdateEnemy(b, e, components.KindSpike, s, frame)
	}
	assert.Equal(t, 16.0, b.X)
	assert.Equal(t, 0.0, b.Y)
}

func TestEnemyAnimationCycles(t *testing.T) {
	s := NewStepper(mustGrid(t, "    ", "GGGG"))
	b := mustBody(t, 16, 0)
	e := newPatroller(-1)
	frames := map[int]bool{}
	for i := 0; i < 60; i++ {
		UpdateEnemy(b, e, components.KindSpike, s, frame)
		frames[e.Frame] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true}, frames)
}
