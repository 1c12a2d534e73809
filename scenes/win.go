package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/render"
	"github.com/automoto/koopa/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WinScene plays fireworks over the final score, then returns to the title.
type WinScene struct {
	ecs    *ecs.ECS
	ctx    *Context
	once   sync.Once
	screen *donburi.Entry
	dt     float64
}

func NewWinScene(ctx *Context) *WinScene {
	return &WinScene{ctx: ctx}
}

func (ws *WinScene) ID() cfg.ModeID { return cfg.ModeWin }

func (ws *WinScene) Update(dt float64) {
	ws.once.Do(ws.configure)
	ws.dt = dt
	ws.ecs.Update()
}

func (ws *WinScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WinScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())
	w := ws.ecs.World
	ws.screen = w.Entry(w.Create(components.Screen))
	components.Screen.SetValue(ws.screen, components.ScreenData{
		Remaining: cfg.Screens.WinDuration,
	})

	ws.ecs.AddSystem(ws.update)
	ws.ecs.AddRenderer(render.LayerWorld, ws.draw)
	ws.ecs.AddRenderer(render.LayerActors, render.Particles)
}

func (ws *WinScene) update(e *ecs.ECS) {
	systems.UpdateFireworks(e.World, ws.ctx.RNG, ws.dt, float64(cfg.C.Width), float64(cfg.C.Height))

	if components.Screen.Get(ws.screen).Tick(ws.dt) {
		return
	}
	ws.ctx.Play.Reset()
	if err := ws.ctx.Nav.PopTo(cfg.ModeTitle); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (ws *WinScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.C.Width, cfg.C.Height
	render.Fill(screen, cfg.PalBlack)
	render.Centered(screen, "CONGRATULATIONS!", fonts.Title.Get(), w/2, h/2-40, cfg.PalSkin)
	render.Centered(screen, "YOU SAVED THE PRINCESS!", fonts.Menu.Get(), w/2, h/2, cfg.PalWhite)
	render.Centered(screen, fmt.Sprintf("FINAL SCORE: %d", ws.ctx.Play.Score), fonts.Menu.Get(), w/2, h/2+40, cfg.PalBlue)
}
