package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/koopa/assets"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/input"
	"github.com/automoto/koopa/modes"
	"github.com/automoto/koopa/scenes"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/state"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	stack  modes.Stack[scenes.Scene]
	last   time.Time
}

func (g *Game) Push(s scenes.Scene) error { return g.stack.Push(s) }

func (g *Game) Pop() error {
	_, err := g.stack.Pop()
	return err
}

func (g *Game) Replace(s scenes.Scene) error { return g.stack.Replace(s) }

func (g *Game) PopTo(id cfg.ModeID) error { return g.stack.PopTo(id) }

func NewGame(ctx *scenes.Context) (*Game, error) {
	g := &Game{
		bounds: image.Rectangle{},
	}
	ctx.Nav = g

	if err := g.Push(scenes.NewTitleScene(ctx)); err != nil {
		return nil, err
	}
	if cfg.Debug.SkipMenu {
		if err := skipMenu(ctx); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// skipMenu stacks the menus under a level session for world 1-1.
func skipMenu(ctx *scenes.Context) error {
	nav := ctx.Nav
	if err := nav.Push(scenes.NewFileSelectScene(ctx)); err != nil {
		return err
	}
	if err := nav.Push(scenes.NewWorldMapScene(ctx)); err != nil {
		return err
	}
	if err := ctx.Play.StartWorld(1); err != nil {
		return err
	}
	level, err := scenes.NewLevelScene(ctx)
	if err != nil {
		return err
	}
	return nav.Push(level)
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / float64(cfg.C.TPS)
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), cfg.C.MaxDelta)
	}
	g.last = now

	scene, ok := g.stack.Top()
	if !ok {
		return ebiten.Termination
	}
	scene.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if scene, ok := g.stack.Top(); ok {
		scene.Draw(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.StringVar(&cfg.Debug.DataDir, "data", cfg.Debug.DataDir, "directory for level and overworld files")
	flag.Int64Var(&cfg.Debug.Seed, "seed", 0, "level generator seed (0 picks one from the clock)")
	flag.BoolVar(&cfg.Debug.DrawColliders, "debug", false, "draw collider outlines")
	flag.BoolVar(&cfg.Debug.SkipMenu, "skip-menu", false, "start directly in world 1-1")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}
	poller, err := input.NewPoller()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	files := leveldata.DirStore{Dir: cfg.Debug.DataDir}
	ow, err := leveldata.LoadOverworld(files)
	if err != nil {
		if !errors.Is(err, leveldata.ErrNotFound) {
			log.Printf("Warning: Could not load overworld: %v", err)
		}
		ow = leveldata.DefaultOverworld()
	}

	embedded, err := assets.Levels()
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	ctx := &scenes.Context{
		Play:   state.NewPlay(state.OpenSaves(), ow),
		Levels: state.NewLevels(files, embedded, rng),
		Files:  files,
		Input:  poller,
		RNG:    rng,
	}

	game, err := NewGame(ctx)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Koopa Engine")
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
