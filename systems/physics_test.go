package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/koopa/components"
	"github.com/automoto/koopa/shared/gamemath"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func mustGrid(t *testing.T, rows ...string) *leveldata.Grid {
	t.Helper()
	g, err := leveldata.NewGrid(rows, 16)
	require.NoError(t, err)
	return g
}

func mustBody(t *testing.T, x, y float64) *components.BodyData {
	t.Helper()
	b, err := components.NewBody(x, y, 16, 16)
	require.NoError(t, err)
	return &b
}

func TestStepFreeFall(t *testing.T) {
	s := NewStepper(mustGrid(t, "    "))
	b := mustBody(t, 0, 0)

	const steps = 10
	for i := 0; i < steps; i++ {
		s.Step(b, frame)
	}

	// semi-implicit Euler: v_n = n*g, y_n = g*n(n+1)/2 with g = 0.5 per frame
	assert.InDelta(t, 0.5*steps, b.VY, 1e-9)
	assert.InDelta(t, 0.5*steps*(steps+1)/2, b.Y, 1e-9)
	assert.False(t, b.OnGround)
}

func TestStepRestingBodyIsGrounded(t *testing.T) {
	g := mustGrid(t,
		"    ",
		"GGGG",
	)

	t.Run("from the air flag", func(t *testing.T) {
		s := NewStepper(g)
		b := mustBody(t, 16, 0)
		contacts := s.Step(b, frame)

		assert.True(t, b.OnGround)
		assert.True(t, contacts.Landed)
		assert.Equal(t, 16.0, b.Bottom())
		assert.Equal(t, 0.0, b.VY)
	})

	t.Run("already grounded", func(t *testing.T) {
		s := NewStepper(g)
		b := mustBody(t, 16, 0)
		b.OnGround = true
		for i := 0; i < 5; i++ {
			s.Step(b, frame)
			assert.True(t, b.OnGround, "step %d", i)
			assert.Equal(t, 16.0, b.Bottom())
		}
	})

	t.Run("walking across tile seams", func(t *testing.T) {
		s := NewStepper(g)
		b := mustBody(t, 0, 0)
		b.OnGround = true
		b.VX = 1
		for i := 0; i < 40; i++ {
			s.Step(b, frame)
			require.True(t, b.OnGround, "step %d", i)
		}
		assert.Equal(t, 1.0, b.VX)
		assert.Equal(t, 40.0, b.X)
		assert.Equal(t, 0.0, b.Y)
	})
}

func TestStepWalkingOffALedgeFalls(t *testing.T) {
	s := NewStepper(mustGrid(t,
		"    ",
		"GG  ",
	))
	b := mustBody(t, 8, 0)
	b.OnGround = true
	b.VX = 2

	for i := 0; i < 14; i++ {
		s.Step(b, frame)
	}
	assert.False(t, b.OnGround)
	assert.Greater(t, b.Y, 0.0)
}

func TestStepWalls(t *testing.T) {
	g := mustGrid(t,
		"     ",
		"B   B",
		"GGGGG",
	)

	t.Run("right", func(t *testing.T) {
		s := NewStepper(g)
		b := mustBody(t, 47, 16)
		b.OnGround = true
		b.VX = 2
		contacts := s.Step(b, frame)
		assert.True(t, contacts.HitWall)
		assert.Equal(t, 48.0, b.X)
		assert.Equal(t, 0.0, b.VX)
		assert.True(t, b.OnGround)
	})

	t.Run("left", func(t *testing.T) {
		s := NewStepper(g)
		b := mustBody(t, 17, 16)
		b.OnGround = true
		b.VX = -2
		contacts := s.Step(b, frame)
		assert.True(t, contacts.HitWall)
		assert.Equal(t, 16.0, b.X)
		assert.Equal(t, 0.0, b.VX)
	})
}

func TestStepCeiling(t *testing.T) {
	s := NewStepper(mustGrid(t,
		" ? ",
		"   ",
		"   ",
	))
	b := mustBody(t, 16, 18)
	b.VY = -5

	contacts := s.Step(b, frame)
	require.Len(t, contacts.Ceiling, 1)
	assert.Equal(t, gamemath.Rect{X: 16, Y: 0, W: 16, H: 16}, contacts.Ceiling[0])
	assert.Equal(t, 16.0, b.Y)
	assert.Equal(t, 0.0, b.VY)
	assert.False(t, b.OnGround)
}

func TestStepJumpIntoWallSnapsBothAxes(t *testing.T) {
	s := NewStepper(mustGrid(t,
		"  B",
		"  B",
		"  B",
		"GGG",
	))
	b := mustBody(t, 16, 32)
	b.VX = 2
	b.VY = -5

	contacts := s.Step(b, frame)
	// the wall tile beside the head is also a ceiling for the jump
	require.Len(t, contacts.Ceiling, 1)
	assert.Equal(t, gamemath.Rect{X: 32, Y: 16, W: 16, H: 16}, contacts.Ceiling[0])
	assert.True(t, contacts.HitWall)
	assert.Equal(t, 16.0, b.X)
	assert.Equal(t, 32.0, b.Y)
	assert.Equal(t, 0.0, b.VY)
	assert.Equal(t, 0.0, b.VX)
}

func TestStepLandingOnACorner(t *testing.T) {
	s := NewStepper(mustGrid(t,
		"    ",
		"  B ",
	))
	b := mustBody(t, 15, 0)
	b.VX = 2
	b.VY = 4

	contacts := s.Step(b, frame)
	assert.True(t, contacts.Landed)
	assert.True(t, contacts.HitWall)
	assert.True(t, b.OnGround)
	assert.Equal(t, 0.0, b.Y)
	assert.Equal(t, 0.0, b.VY)
	// the horizontal test still sees the overlap from before the landing snap
	assert.Equal(t, 16.0, b.X)
	assert.Equal(t, 0.0, b.VX)
}

// colliderList returns every collider regardless of the query box.
type colliderList []gamemath.Rect

func (l colliderList) AppendCandidates(dst []gamemath.Rect, _ gamemath.Rect) []gamemath.Rect {
	return append(dst, l...)
}

func TestStepResolvesCollidersInScanOrder(t *testing.T) {
	floor := gamemath.Rect{X: 0, Y: 18, W: 30, H: 16}
	step := gamemath.Rect{X: 30, Y: 17, W: 16, H: 16}

	tests := []struct {
		name      string
		colliders colliderList
		wantY     float64
	}{
		// the floor lands the body, then the step pushes it back sideways
		{name: "floor first", colliders: colliderList{floor, step}, wantY: 2},
		// the step lands the body above the floor, which then no longer overlaps
		{name: "step first", colliders: colliderList{step, floor}, wantY: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStepper(tt.colliders)
			b := mustBody(t, 14, 0)
			b.VX = 2
			b.VY = 4

			contacts := s.Step(b, frame)
			assert.True(t, contacts.Landed)
			assert.True(t, contacts.HitWall)
			assert.True(t, b.OnGround)
			assert.Equal(t, 14.0, b.X)
			assert.Equal(t, tt.wantY, b.Y)
		})
	}
}

func TestStepInactiveBodyIsUntouched(t *testing.T) {
	s := NewStepper(mustGrid(t, "    "))
	b := mustBody(t, 5, 5)
	b.Active = false
	s.Step(b, frame)
	assert.Equal(t, 5.0, b.Y)
}

func TestSpatialIndexMatchesLinearScan(t *testing.T) {
	g, err := leveldata.Generate(5, 4, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	idx := NewSpatialIndex(g.Colliders(), g.PixelWidth(), g.PixelHeight(), g.TileSize())
	assert.Equal(t, g.NumColliders(), idx.Len())

	overlapping := func(q ColliderQuery, box gamemath.Rect) []gamemath.Rect {
		var out []gamemath.Rect
		for _, c := range q.AppendCandidates(nil, box) {
			if box.Overlaps(c) {
				out = append(out, c)
			}
		}
		return out
	}

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		box := gamemath.Rect{
			X: rng.Float64() * g.PixelWidth(),
			Y: rng.Float64() * g.PixelHeight(),
			W: 1 + rng.Float64()*48,
			H: 1 + rng.Float64()*48,
		}
		assert.Equal(t, overlapping(g, box), overlapping(idx, box), "box %+v", box)
	}
}

func TestSpatialIndexSimulatesLikeLinearScan(t *testing.T) {
	g, err := leveldata.Generate(1, 2, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	linear := NewStepper(g)
	indexed := NewStepper(NewSpatialIndex(g.Colliders(), g.PixelWidth(), g.PixelHeight(), g.TileSize()))

	a := mustBody(t, 80, 100)
	b := mustBody(t, 80, 100)
	for i := 0; i < 600; i++ {
		// hop right every half second
		for _, body := range []*components.BodyData{a, b} {
			body.VX = 2
			if i%30 == 0 && body.OnGround {
				body.VY = -5
				body.OnGround = false
			}
		}
		linear.Step(a, frame)
		indexed.Step(b, frame)
		require.Equal(t, *a, *b, "step %d", i)
	}
}
