package render

import (
	"fmt"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudHeight   = 20
	hudBaseline = 14
	hudMargin   = 10
)

// HUD returns the renderer for the status bar and the theme caption.
func HUD(play *state.Play) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		level, _, ok := levelEntry(e)
		if !ok {
			return
		}
		w := screen.Bounds().Dx()
		h := screen.Bounds().Dy()
		face := fonts.HUD.Get()

		Rect(screen, 0, 0, float64(w), hudHeight, cfg.PalBlack)

		Text(screen, fmt.Sprintf("SCORE %06d", play.Score), face, hudMargin, hudBaseline, cfg.PalSkin)
		Centered(screen, fmt.Sprintf("COINS %02d", play.Coins), face, w/3, hudBaseline, cfg.PalSkin)
		Centered(screen, fmt.Sprintf("TIME %03d", int(level.Timer)), face, w/2+20, hudBaseline, cfg.PalSkin)

		lives := fmt.Sprintf("x%d", play.Lives)
		Text(screen, lives, face, w-120, hudBaseline, cfg.PalSkin)
		Rect(screen, float64(w-134), 2, 8, 8, cfg.PalSkin)
		Rect(screen, float64(w-134), 10, 8, 8, cfg.PalRed)

		world := "WORLD " + level.ID
		Text(screen, world, face, w-fonts.Width(face, world)-hudMargin, hudBaseline, cfg.PalSkin)

		Centered(screen, level.Theme.Name, face, w/2, h-8, cfg.PalSkin)
	}
}
