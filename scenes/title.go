package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/render"
	"github.com/automoto/koopa/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	logoWidth  = 240
	logoHeight = 100
)

// TitleScene drops the logo in and waits for Enter or the editor key.
type TitleScene struct {
	ecs  *ecs.ECS
	ctx  *Context
	once sync.Once
	keys keys

	logo    *gween.Tween
	logoY   float64
	landed  bool
	elapsed float64
	dt      float64
}

func NewTitleScene(ctx *Context) *TitleScene {
	return &TitleScene{ctx: ctx}
}

func (ts *TitleScene) ID() cfg.ModeID { return cfg.ModeTitle }

func (ts *TitleScene) Update(dt float64) {
	ts.once.Do(ts.configure)
	ts.dt = dt
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

// Resume restarts the logo drop when a lower scene pops back here.
func (ts *TitleScene) Resume() {
	ts.keys.reset()
	if ts.logo != nil {
		ts.logo.Reset()
		ts.landed = false
	}
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	rest := float32(cfg.C.Height/2 - 60)
	ts.logo = gween.New(-logoHeight/2, rest, float32(cfg.Screens.TitleLogoDrop), ease.OutBounce)
	ts.logoY = -logoHeight / 2

	ts.ecs.AddSystem(ts.update)
	ts.ecs.AddRenderer(render.LayerWorld, ts.draw)
}

func (ts *TitleScene) update(_ *ecs.ECS) {
	ts.keys.update(ts.ctx.Input)
	ts.elapsed += ts.dt
	y, done := ts.logo.Update(float32(ts.dt))
	ts.logoY = float64(y)
	ts.landed = done

	switch {
	case ts.keys.pressed(cfg.ActionMenuSelect):
		if err := ts.ctx.Nav.Push(NewFileSelectScene(ts.ctx)); err != nil {
			log.Printf("Warning: %v", err)
		}
	case ts.keys.pressed(cfg.ActionEditor):
		if err := ts.ctx.Nav.Push(NewOverworldEditorScene(ts.ctx)); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func (ts *TitleScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.C.Width, cfg.C.Height
	render.Fill(screen, cfg.PalSky)

	x := float64(w-logoWidth) / 2
	y := ts.logoY
	render.Rect(screen, x-4, y-4, logoWidth+8, logoHeight+8, cfg.PalGrey)
	render.Rect(screen, x, y, logoWidth, logoHeight, cfg.PalRed)
	render.Centered(screen, "KOOPA ENGINE 1.0A", fonts.Title.Get(), w/2, int(y)+40, cfg.PalSkin)
	render.Centered(screen, "8 Worlds Edition", fonts.HUD.Get(), w/2, int(y)+70, cfg.PalBrown)

	// cast below the logo
	castY := y + logoHeight + 50
	render.Rect(screen, float64(w/2-100)+2, castY, 12, 4, cfg.PalRed)
	render.Rect(screen, float64(w/2-100)+4, castY+4, 8, 4, cfg.PalSkin)
	render.Rect(screen, float64(w/2-100)+4, castY+8, 8, 16, cfg.PalRed)
	render.Rect(screen, float64(w/2-100)+2, castY+24, 4, 8, cfg.PalBrown)
	render.Rect(screen, float64(w/2-100)+10, castY+24, 4, 8, cfg.PalBrown)
	render.Circle(screen, float64(w/2+38), castY+30, 6, cfg.PalBrown)
	render.Circle(screen, float64(w/2+78), castY+30, 6, cfg.PalGreen)
	render.Rect(screen, float64(w/2+74), castY+20, 8, 4, cfg.PalSkin)

	if ts.landed && systems.Blink(ts.elapsed, cfg.Screens.BlinkRate) {
		render.Centered(screen, "PRESS ENTER", fonts.Menu.Get(), w/2, h-20, cfg.PalSkin)
		render.Centered(screen, "Press E for Editor", fonts.HUD.Get(), w/2, h-50, cfg.PalBrown)
	}
}
