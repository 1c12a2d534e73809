package leveldata

import (
	"fmt"
	"math/rand"

	cfg "github.com/automoto/koopa/config"
)

// Generate lays out level `level` of world `world` on a Rows×Cols grid.
//
// Features are written in a fixed order (platforms, pipes, blocks, enemies,
// then the start and flag markers) and each write replaces whatever an
// earlier feature left in that cell. Placements that fall off the grid are
// dropped.
func Generate(world, level int, rng *rand.Rand) (*Grid, error) {
	if world < 1 || world > cfg.Level.Worlds {
		return nil, fmt.Errorf("generate: %w: world %d", ErrOutOfBounds, world)
	}
	if level < 1 || level > cfg.Level.LevelsPerWorld {
		return nil, fmt.Errorf("generate: %w: level %d", ErrOutOfBounds, level)
	}

	gen := cfg.Generator
	d := NewDraft(cfg.Level.Rows, cfg.Level.Cols, cfg.Physics.TileSize)

	d.Fill(gen.GroundRow, Ground)
	for r := gen.GroundRow + 1; r < d.Rows(); r++ {
		d.Fill(r, Block)
	}

	for i := 0; i < gen.PlatformBase+level; i++ {
		row := randIn(rng, gen.PlatformRows, 0)
		col := randIn(rng, gen.PlatformCol, i*gen.PlatformStride)
		length := randIn(rng, gen.PlatformLength, 0)
		for j := 0; j < length; j++ {
			_ = d.Set(row, col+j, Platform)
		}
	}

	// Pipes stand on the ground row and rise from the tile above it.
	for i := 0; i < gen.PipeBase+level/2; i++ {
		col := randIn(rng, gen.PipeCol, i*gen.PipeStride)
		height := randIn(rng, gen.PipeHeight, 0)
		for j := 0; j < height; j++ {
			row := gen.GroundRow - 1 - j
			_ = d.Set(row, col, Pipe)
			_ = d.Set(row, col+1, Pipe)
		}
	}

	for i := 0; i < gen.BlockBase+level; i++ {
		row := randIn(rng, gen.BlockRows, 0)
		col := randIn(rng, gen.BlockCol, i*gen.BlockStride)
		code := Block
		if rng.Float64() > 0.5 {
			code = Question
		}
		_ = d.Set(row, col, code)
	}

	enemy := enemyCode(cfg.ThemeFor(world))
	for i := 0; i < gen.EnemyBase+level; i++ {
		col := randIn(rng, gen.EnemyCol, i*gen.EnemyStride)
		_ = d.Set(gen.GroundRow-1, col, enemy)
	}

	_ = d.Set(gen.GroundRow-1, gen.StartCol, Start)
	_ = d.Set(gen.GroundRow-1, gen.FlagCol, Flag)

	return d.Build(), nil
}

// randIn draws uniformly from the inclusive band shifted by offset.
func randIn(rng *rand.Rand, b cfg.Band, offset int) int {
	return b.Min + offset + rng.Intn(b.Max-b.Min+1)
}

func enemyCode(t cfg.Theme) Code {
	if len(t.Enemy) == 1 {
		if c := Code(t.Enemy[0]); c.Enemy() {
			return c
		}
	}
	return Goomba
}
