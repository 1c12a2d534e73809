package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the final score, then returns to file select with a
// fresh run.
type GameOverScene struct {
	ecs    *ecs.ECS
	ctx    *Context
	once   sync.Once
	screen *donburi.Entry
	dt     float64
}

func NewGameOverScene(ctx *Context) *GameOverScene {
	return &GameOverScene{ctx: ctx}
}

func (gs *GameOverScene) ID() cfg.ModeID { return cfg.ModeGameOver }

func (gs *GameOverScene) Update(dt float64) {
	gs.once.Do(gs.configure)
	gs.dt = dt
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	w := gs.ecs.World
	gs.screen = w.Entry(w.Create(components.Screen))
	components.Screen.SetValue(gs.screen, components.ScreenData{
		Remaining: cfg.Screens.GameOverDuration,
	})

	gs.ecs.AddSystem(gs.update)
	gs.ecs.AddRenderer(render.LayerWorld, gs.draw)
}

func (gs *GameOverScene) update(_ *ecs.ECS) {
	s := components.Screen.Get(gs.screen)
	if s.Tick(gs.dt) {
		return
	}
	gs.ctx.Play.Reset()
	if err := gs.ctx.Nav.PopTo(cfg.ModeFileSelect); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (gs *GameOverScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.C.Width, cfg.C.Height
	render.Fill(screen, cfg.PalBlack)
	render.Centered(screen, "GAME OVER", fonts.Title.Get(), w/2, h/2-10, cfg.PalRed)
	render.Centered(screen, fmt.Sprintf("FINAL SCORE: %d", gs.ctx.Play.Score), fonts.Menu.Get(), w/2, h/2+30, cfg.PalSkin)
}
