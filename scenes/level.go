package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/level"
	"github.com/automoto/koopa/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const bannerSlide = 0.8 // seconds

// LevelScene runs one level session and routes its outcome.
type LevelScene struct {
	ecs     *ecs.ECS
	ctx     *Context
	once    sync.Once
	session *level.Session
	keys    keys

	banner  *gween.Tween
	bannerX float64
	dt      float64
}

// NewLevelScene builds a session for the play context's current level.
func NewLevelScene(ctx *Context) (*LevelScene, error) {
	id := ctx.Play.LevelID()
	grid, err := ctx.Levels.Get(id)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}
	session, err := level.NewSession(id, grid, ctx.Play, level.WithViewportWidth(float64(cfg.C.Width)))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}
	return &LevelScene{ctx: ctx, session: session}, nil
}

func (ls *LevelScene) ID() cfg.ModeID { return cfg.ModeLevel }

func (ls *LevelScene) Update(dt float64) {
	ls.once.Do(ls.configure)
	ls.dt = dt
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ls.ecs = ecs.NewECS(ls.session.World())
	width := float32(cfg.C.Width)
	ls.banner = gween.New(-width/2, width/2, bannerSlide, ease.OutCubic)
	ls.bannerX = -float64(width) / 2

	ls.ecs.AddSystem(ls.update)

	ls.ecs.AddRenderer(render.LayerWorld, render.DrawLevel)
	ls.ecs.AddRenderer(render.LayerActors, render.Actors(ls.ctx.Play))
	ls.ecs.AddRenderer(render.LayerActors, render.Colliders)
	ls.ecs.AddRenderer(render.LayerHUD, render.HUD(ls.ctx.Play))
	ls.ecs.AddRenderer(render.LayerHUD, ls.drawBanner)
}

func (ls *LevelScene) update(_ *ecs.ECS) {
	ls.handle(ls.ctx.Input.Poll())
}

// handle steps the session with one frame of input and routes its outcome.
func (ls *LevelScene) handle(pressed [cfg.ActionCount]bool) {
	ls.keys.advance(pressed)
	if ls.keys.pressed(cfg.ActionMenuBack) {
		if err := ls.ctx.Nav.PopTo(cfg.ModeOverworld); err != nil {
			log.Printf("Warning: %v", err)
		}
		return
	}
	outcome := ls.session.Update(ls.keys.data.Current, ls.dt)

	if ls.session.Level().Phase != components.PhaseRunning {
		x, _ := ls.banner.Update(float32(ls.dt))
		ls.bannerX = float64(x)
	}

	nav := ls.ctx.Nav
	var err error
	switch outcome {
	case level.OutcomeNone:
		return
	case level.OutcomeNextLevel:
		var next *LevelScene
		next, err = NewLevelScene(ls.ctx)
		if err == nil {
			err = nav.Replace(next)
		}
	case level.OutcomeWorldComplete:
		err = nav.PopTo(cfg.ModeOverworld)
	case level.OutcomeGameComplete:
		err = nav.Push(NewWinScene(ls.ctx))
	case level.OutcomeGameOver:
		err = nav.Push(NewGameOverScene(ls.ctx))
	}
	if err != nil {
		log.Printf("Warning: %v after %v", err, outcome)
	}
}

func (ls *LevelScene) drawBanner(_ *ecs.ECS, screen *ebiten.Image) {
	if ls.session.Level().Phase == components.PhaseRunning {
		return
	}
	y := cfg.C.Height / 3
	render.Rect(screen, 0, float64(y-24), float64(cfg.C.Width), 36, cfg.PalBlack)
	render.Centered(screen, "COURSE CLEAR!", fonts.Title.Get(), int(ls.bannerX), y, cfg.PalSkin)
}
