// Package render draws the game world, HUD and menu screens with flat
// palette shapes.
package render

import (
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Draw layers, back to front.
const (
	LayerWorld ecs.LayerID = iota
	LayerActors
	LayerHUD
)

// Rect fills a rectangle with palette color idx.
func Rect(screen *ebiten.Image, x, y, w, h float64, idx int) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Color(idx), false)
}

// Circle fills a circle with palette color idx.
func Circle(screen *ebiten.Image, cx, cy, r float64, idx int) {
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), cfg.Color(idx), true)
}

// Fill paints the whole screen.
func Fill(screen *ebiten.Image, idx int) {
	screen.Fill(cfg.Color(idx))
}

// Text draws s with its baseline at y.
func Text(screen *ebiten.Image, s string, face font.Face, x, y int, idx int) {
	text.Draw(screen, s, face, x, y, cfg.Color(idx)) //nolint:staticcheck
}

// Centered draws s horizontally centered on cx.
func Centered(screen *ebiten.Image, s string, face font.Face, cx, y int, idx int) {
	Text(screen, s, face, cx-fonts.Width(face, s)/2, y, idx)
}
