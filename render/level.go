package render

import (
	"math"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/state"
	"github.com/automoto/koopa/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	cloudCount   = 10
	cloudSpacing = 80
	cloudColor   = cfg.PalBlue
)

func levelEntry(e *ecs.ECS) (*components.LevelData, float64, bool) {
	entry, ok := tags.Level.First(e.World)
	if !ok {
		return nil, 0, false
	}
	return components.Level.Get(entry), components.Camera.Get(entry).X, true
}

// DrawLevel paints the sky, parallax clouds and every visible tile.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	level, cam, ok := levelEntry(e)
	if !ok {
		return
	}
	theme := level.Theme
	Fill(screen, theme.Sky)

	width := level.Grid.PixelWidth()
	for i := 0; i < cloudCount; i++ {
		x := math.Mod(float64(i*cloudSpacing)+cam/3, width+200) - 100
		y := 30 + float64(i%3)*20
		Circle(screen, x+15, y+7, 8, cloudColor)
		Circle(screen, x+27, y+3, 9, cloudColor)
	}

	ts := level.Grid.TileSize()
	viewW := float64(screen.Bounds().Dx())
	first := max(int(cam/ts), 0)
	last := min(int((cam+viewW)/ts)+1, level.Grid.Cols()-1)
	for row := 0; row < level.Grid.Rows(); row++ {
		for col := first; col <= last; col++ {
			code := level.TileAt(row, col)
			if code == leveldata.Empty || code.Enemy() || code == leveldata.Start {
				continue
			}
			drawTile(screen, theme, code, float64(col)*ts-cam, float64(row)*ts, ts)
		}
	}
}

func drawTile(screen *ebiten.Image, theme cfg.Theme, code leveldata.Code, x, y, ts float64) {
	switch code {
	case leveldata.Ground:
		Rect(screen, x, y, ts, ts, theme.Ground)
		Rect(screen, x, y+ts/2, ts, ts/2, theme.Ground-1)
		Rect(screen, x+4, y+4, ts-8, 4, theme.Ground-2)
	case leveldata.Block:
		Rect(screen, x, y, ts, ts, theme.Block)
		Rect(screen, x+2, y+2, ts-4, ts-4, theme.Block-1)
	case leveldata.Platform:
		Rect(screen, x, y, ts, ts, theme.Ground)
	case leveldata.Pipe:
		Rect(screen, x, y, ts, ts, theme.Pipe)
		Rect(screen, x+2, y+2, ts-4, ts-4, theme.Pipe-1)
	case leveldata.Question:
		Rect(screen, x, y, ts, ts, theme.Block)
		Rect(screen, x+4, y+4, 8, 4, cfg.PalSkin)
		Rect(screen, x+4, y+8, 2, 2, cfg.PalSkin)
		Rect(screen, x+10, y+8, 2, 2, cfg.PalSkin)
	case leveldata.Flag:
		Rect(screen, x+6, y, 4, ts*4, cfg.PalBlue)
		Rect(screen, x, y, 10, 6, cfg.PalRed)
	}
}

// Actors returns the renderer for the player and every active enemy.
func Actors(play *state.Play) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		_, cam, ok := levelEntry(e)
		if !ok {
			return
		}

		tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
			b := components.Body.Get(entry)
			if !b.Active {
				return
			}
			drawEnemy(screen, components.Actor.Get(entry).Kind, b, components.Enemy.Get(entry), b.X-cam, b.Y)
		})

		if entry, ok := tags.Player.First(e.World); ok {
			b := components.Body.Get(entry)
			p := components.Player.Get(entry)
			if p.Visible(cfg.Player.FlickerRate) {
				drawPlayer(screen, play.Size == state.SizeBig, b, p, b.X-cam, b.Y)
			}
		}
	}
}

func drawPlayer(screen *ebiten.Image, big bool, b *components.BodyData, p *components.PlayerData, x, y float64) {
	step := 0.0
	if b.VX != 0 && p.Frame > 0 {
		step = 2
		if !b.FacingRight {
			step = -2
		}
	}
	if big {
		Rect(screen, x+2, y, 12, 4, cfg.PalRed)
		Rect(screen, x+4, y+4, 8, 4, cfg.PalSkin)
		Rect(screen, x+4, y+8, 8, 16, cfg.PalRed)
		Rect(screen, x+step, y+10, 4, 6, cfg.PalSkin)
		Rect(screen, x+12-step, y+10, 4, 6, cfg.PalSkin)
		Rect(screen, x+2, y+24, 4, 8, cfg.PalBrown)
		Rect(screen, x+10, y+24, 4, 8, cfg.PalBrown)
		return
	}
	Rect(screen, x+4, y, 8, 8, cfg.PalSkin)
	Rect(screen, x+2, y, 12, 3, cfg.PalRed)
	Rect(screen, x+4, y+8, 8, 8, cfg.PalRed)
	Rect(screen, x+2+step, y+12, 4, 4, cfg.PalBrown)
	Rect(screen, x+10-step, y+12, 4, 4, cfg.PalBrown)
}

func drawEnemy(screen *ebiten.Image, kind components.Kind, b *components.BodyData, en *components.EnemyData, x, y float64) {
	foot := 2.0
	if en.Frame != 0 {
		foot = -2
	}
	switch kind {
	case components.KindGoomba:
		Circle(screen, x+8, y+10, 6, cfg.PalBrown)
		Rect(screen, x+2, y+14, 4, 2, cfg.PalBrown)
		Rect(screen, x+10, y+14+foot/2, 4, 2, cfg.PalBrown)
		eye := 2.0
		if b.VX > 0 {
			eye = 0
		}
		Rect(screen, x+4+eye, y+6, 2, 2, cfg.PalGrey)
		Rect(screen, x+10-eye, y+6, 2, 2, cfg.PalGrey)
	case components.KindKoopa:
		Circle(screen, x+8, y+10, 6, cfg.PalGreen)
		if !en.Shell {
			Rect(screen, x+4, y, 8, 4, cfg.PalSkin)
		}
		Rect(screen, x+2, y+14, 4, 2, cfg.PalGreen)
		Rect(screen, x+10, y+14, 4, 2, cfg.PalGreen)
	case components.KindFish:
		Rect(screen, x, y+2, 16, 6, cfg.PalBlue)
		Rect(screen, x-5, y, 5, 10, cfg.PalBlue)
		Circle(screen, x+12, y+4, 2, cfg.PalGrey)
	case components.KindSpike:
		Rect(screen, x, y, b.W, b.H, cfg.PalRed)
		for i := 0.0; i < 4; i++ {
			inset := (3 - i) * b.W / 8
			Rect(screen, x+inset, y+i*b.H/4, b.W-2*inset, b.H/4, cfg.PalSkin)
		}
	}
}

// Colliders outlines every solid tile and body when debug drawing is on.
func Colliders(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	level, cam, ok := levelEntry(e)
	if !ok {
		return
	}
	for _, c := range level.Grid.Colliders() {
		outline(screen, c.X-cam, c.Y, c.W, c.H, cfg.PalRed)
	}
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		b := components.Body.Get(entry)
		if b.Active {
			outline(screen, b.X-cam, b.Y, b.W, b.H, cfg.PalGreen)
		}
	})
}

func outline(screen *ebiten.Image, x, y, w, h float64, idx int) {
	Rect(screen, x, y, w, 1, idx)
	Rect(screen, x, y+h-1, w, 1, idx)
	Rect(screen, x, y, 1, h, idx)
	Rect(screen, x+w-1, y, 1, h, idx)
}
