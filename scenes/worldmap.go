package scenes

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/render"
	"github.com/automoto/koopa/state"
	"github.com/automoto/koopa/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	mapColumns  = 4
	mapTileSize = 40
	mapSpacing  = 70
	mapTop      = 70
	bobHeight   = 3
	bobPeriod   = 0.6 // seconds per half cycle
)

// WorldMapScene shows the eight worlds and starts the chosen one.
type WorldMapScene struct {
	ecs  *ecs.ECS
	ctx  *Context
	once sync.Once
	keys keys

	cursor *donburi.Entry
	bob    *gween.Sequence
	bobY   float64
	dt     float64
	notice string
}

func NewWorldMapScene(ctx *Context) *WorldMapScene {
	return &WorldMapScene{ctx: ctx}
}

func (ws *WorldMapScene) ID() cfg.ModeID { return cfg.ModeOverworld }

func (ws *WorldMapScene) Update(dt float64) {
	ws.once.Do(ws.configure)
	ws.dt = dt
	ws.ecs.Update()
}

func (ws *WorldMapScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Resume puts the cursor on the play context's world after a level ends.
func (ws *WorldMapScene) Resume() {
	ws.keys.reset()
	ws.notice = ""
	if ws.cursor != nil {
		components.Cursor.Get(ws.cursor).Selected = ws.ctx.Play.World - 1
	}
}

func (ws *WorldMapScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())
	w := ws.ecs.World
	ws.cursor = w.Entry(w.Create(components.Cursor))
	components.Cursor.SetValue(ws.cursor, components.CursorData{
		Selected: ws.ctx.Play.World - 1,
		Count:    cfg.Level.Worlds,
		Columns:  mapColumns,
	})

	ws.bob = gween.NewSequence(
		gween.New(-bobHeight, bobHeight, bobPeriod, ease.InOutSine),
		gween.New(bobHeight, -bobHeight, bobPeriod, ease.InOutSine),
	)
	ws.bob.SetLoop(-1)

	ws.ecs.AddSystem(ws.update)
	ws.ecs.AddRenderer(render.LayerWorld, ws.draw)
}

func (ws *WorldMapScene) update(_ *ecs.ECS) {
	ws.keys.update(ws.ctx.Input)
	y, _, _ := ws.bob.Update(float32(ws.dt))
	ws.bobY = float64(y)

	c := components.Cursor.Get(ws.cursor)
	switch {
	case ws.keys.pressed(cfg.ActionMenuLeft):
		systems.MoveCursor(c, -1, 0)
	case ws.keys.pressed(cfg.ActionMenuRight):
		systems.MoveCursor(c, 1, 0)
	case ws.keys.pressed(cfg.ActionMenuUp):
		systems.MoveCursor(c, 0, -1)
	case ws.keys.pressed(cfg.ActionMenuDown):
		systems.MoveCursor(c, 0, 1)
	case ws.keys.pressed(cfg.ActionMenuSelect):
		ws.start(c.Selected + 1)
	case ws.keys.pressed(cfg.ActionMenuBack):
		if err := ws.ctx.Nav.Pop(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func (ws *WorldMapScene) start(world int) {
	play := ws.ctx.Play
	if err := play.StartWorld(world); err != nil {
		if errors.Is(err, state.ErrLocked) {
			ws.notice = fmt.Sprintf("WORLD %d IS LOCKED", world)
			return
		}
		log.Printf("Warning: %v", err)
		return
	}
	next, err := NewLevelScene(ws.ctx)
	if err != nil {
		log.Printf("Warning: Could not start level %s: %v", play.LevelID(), err)
		return
	}
	if err := ws.ctx.Nav.Push(next); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func mapTile(world int) (x, y float64) {
	row := (world - 1) / mapColumns
	col := (world - 1) % mapColumns
	left := float64(cfg.C.Width-(mapColumns-1)*mapSpacing-mapTileSize) / 2
	return left + float64(col*mapSpacing), float64(mapTop + row*mapSpacing)
}

func (ws *WorldMapScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.C.Width, cfg.C.Height
	render.Fill(screen, cfg.PalSky)
	render.Centered(screen, "WORLD MAP", fonts.Title.Get(), w/2, 40, cfg.PalRed)

	play := ws.ctx.Play
	face := fonts.Menu.Get()
	for world := 1; world <= cfg.Level.Worlds; world++ {
		x, y := mapTile(world)
		theme := cfg.ThemeFor(world)
		if world <= play.Unlocked() {
			render.Rect(screen, x, y, mapTileSize, mapTileSize, theme.Ground)
			render.Rect(screen, x+5, y+5, mapTileSize-10, mapTileSize-10, theme.Block)
		} else {
			render.Rect(screen, x, y, mapTileSize, mapTileSize, cfg.PalGrey)
			render.Rect(screen, x+5, y+5, mapTileSize-10, mapTileSize-10, cfg.PalWhite)
			for i := 0.0; i < mapTileSize; i += 2 {
				render.Rect(screen, x+i, y+i, 3, 3, cfg.PalRed)
				render.Rect(screen, x+mapTileSize-i-3, y+i, 3, 3, cfg.PalRed)
			}
		}
		render.Centered(screen, fmt.Sprintf("%d", world), face, int(x)+mapTileSize/2, int(y)+mapTileSize/2+6, cfg.PalSkin)
	}

	c := components.Cursor.Get(ws.cursor)
	x, y := mapTile(c.Selected + 1)
	render.Rect(screen, x-5, y-5+ws.bobY, mapTileSize+10, 5, cfg.PalSkin)
	render.Rect(screen, x-5, y+mapTileSize+ws.bobY, mapTileSize+10, 5, cfg.PalSkin)
	mx := x + mapTileSize/2 - 8
	my := y - 30 + ws.bobY
	render.Rect(screen, mx+4, my+8, 8, 8, cfg.PalRed)
	render.Rect(screen, mx+4, my, 8, 8, cfg.PalSkin)

	small := fonts.HUD.Get()
	render.Centered(screen, cfg.ThemeFor(c.Selected+1).Name, small, w/2, h-60, cfg.PalSkin)
	render.Centered(screen, fmt.Sprintf("WORLDS UNLOCKED: %d/%d", play.Unlocked(), cfg.Level.Worlds), small, w/2, h-40, cfg.PalSkin)
	if ws.notice != "" {
		render.Centered(screen, ws.notice, small, w/2, h-80, cfg.PalRed)
	}
	render.Centered(screen, "ARROWS: MOVE   ENTER: PLAY   ESC: BACK", small, w/2, h-15, cfg.PalGrey)
}
