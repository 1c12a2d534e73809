package scenes

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/render"
	"github.com/automoto/koopa/state"
	"github.com/automoto/koopa/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FileSelectScene picks one of the save slots.
type FileSelectScene struct {
	ecs  *ecs.ECS
	ctx  *Context
	once sync.Once
	keys keys

	cursor  *donburi.Entry
	elapsed float64
	dt      float64
}

func NewFileSelectScene(ctx *Context) *FileSelectScene {
	return &FileSelectScene{ctx: ctx}
}

func (fs *FileSelectScene) ID() cfg.ModeID { return cfg.ModeFileSelect }

func (fs *FileSelectScene) Update(dt float64) {
	fs.once.Do(fs.configure)
	fs.dt = dt
	fs.ecs.Update()
}

func (fs *FileSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FileSelectScene) Resume() { fs.keys.reset() }

func (fs *FileSelectScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())
	w := fs.ecs.World
	fs.cursor = w.Entry(w.Create(components.Cursor))
	components.Cursor.SetValue(fs.cursor, components.CursorData{
		Selected: fs.ctx.Play.Slot,
		Count:    state.SlotCount,
		Columns:  state.SlotCount,
	})

	fs.ecs.AddSystem(fs.update)
	fs.ecs.AddRenderer(render.LayerWorld, fs.draw)
}

var slotKeys = []cfg.ActionID{cfg.ActionSlot1, cfg.ActionSlot2, cfg.ActionSlot3}

func (fs *FileSelectScene) update(_ *ecs.ECS) {
	fs.keys.update(fs.ctx.Input)
	fs.elapsed += fs.dt
	c := components.Cursor.Get(fs.cursor)

	for i, a := range slotKeys {
		if fs.keys.pressed(a) {
			systems.SelectCursor(c, i)
		}
	}
	if fs.keys.pressed(cfg.ActionMenuLeft) {
		systems.MoveCursor(c, -1, 0)
	}
	if fs.keys.pressed(cfg.ActionMenuRight) {
		systems.MoveCursor(c, 1, 0)
	}

	switch {
	case fs.keys.pressed(cfg.ActionMenuSelect):
		play := fs.ctx.Play
		if err := play.SelectSlot(c.Selected); err != nil {
			log.Printf("Warning: %v", err)
			return
		}
		play.Reset()
		if err := fs.ctx.Nav.Push(NewWorldMapScene(fs.ctx)); err != nil {
			log.Printf("Warning: %v", err)
		}
	case fs.keys.pressed(cfg.ActionMenuBack):
		if err := fs.ctx.Nav.Pop(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func (fs *FileSelectScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	render.Fill(screen, cfg.PalSky)
	w := cfg.C.Width
	render.Centered(screen, "SELECT PLAYER", fonts.Title.Get(), w/2, 40, cfg.PalRed)

	c := components.Cursor.Get(fs.cursor)
	slotFace := fonts.Menu.Get()
	small := fonts.Small.Get()
	left := float64(w)/2 - 140
	for i, slot := range fs.ctx.Play.Progress.Slots {
		x := left + float64(i)*100
		y := 90 + 5*math.Sin(fs.elapsed*3+float64(i))

		render.Rect(screen, x-5, y-5, 50, 70, cfg.PalBrown)
		render.Rect(screen, x, y, 40, 60, cfg.PalRed)
		render.Centered(screen, fmt.Sprintf("%d", i+1), slotFace, int(x)+20, int(y)+20, cfg.PalSkin)
		render.Centered(screen, fmt.Sprintf("WORLD %d", slot.World), small, int(x)+20, int(y)+52, cfg.PalSkin)

		if i == c.Selected {
			render.Rect(screen, x-2, y-2, 44, 2, cfg.PalSkin)
			render.Rect(screen, x-2, y+60, 44, 2, cfg.PalSkin)
			render.Rect(screen, x-2, y-2, 2, 64, cfg.PalSkin)
			render.Rect(screen, x+40, y-2, 2, 64, cfg.PalSkin)
		}
	}

	render.Centered(screen, "1-3 / ARROWS: SELECT   ENTER: START   ESC: BACK", fonts.HUD.Get(), w/2, cfg.C.Height-20, cfg.PalGrey)
}
