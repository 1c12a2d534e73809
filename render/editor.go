package render

import (
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	swatchSize    = 25
	swatchSpacing = 30
	paletteInset  = 10
	paletteBottom = 30
)

var levelCodeColors = map[leveldata.Code]int{
	leveldata.Ground:   20,
	leveldata.Block:    cfg.PalRed,
	leveldata.Platform: cfg.PalBrown,
	leveldata.Pipe:     cfg.PalGreen,
	leveldata.Question: cfg.PalSkin,
	leveldata.Start:    cfg.PalRed,
	leveldata.Flag:     cfg.PalBlue,
	leveldata.Empty:    cfg.PalSky,
	leveldata.Goomba:   cfg.PalBrown,
	leveldata.Koopa:    cfg.PalGreen,
	leveldata.Fish:     cfg.PalBlue,
	leveldata.Spike:    20,
}

var overworldColors = map[string]int{
	leveldata.TileEmpty:  cfg.PalSky,
	leveldata.TileGrass:  20,
	leveldata.TileDesert: cfg.PalBrown,
	leveldata.TileWater:  25,
	leveldata.TileLevel:  cfg.PalRed,
	leveldata.TileCastle: cfg.PalWhite,
	leveldata.TilePipe:   cfg.PalGreen,
	leveldata.TilePath:   cfg.PalBrown,
	leveldata.TileStart:  cfg.PalSkin,
}

// CodeColor is the editor swatch color of a tile code.
func CodeColor(c leveldata.Code) int {
	if idx, ok := levelCodeColors[c]; ok {
		return idx
	}
	return cfg.PalGrey
}

// OverworldColor is the editor swatch color of an overworld tile type.
func OverworldColor(t string) int {
	if idx, ok := overworldColors[t]; ok {
		return idx
	}
	return cfg.PalGrey
}

// Draft draws an editable level scrolled by panX. Markers get a letter so
// they stay distinguishable from terrain.
func Draft(screen *ebiten.Image, d *leveldata.Draft, panX, tileSize float64) {
	face := fonts.Small.Get()
	viewW := float64(screen.Bounds().Dx())
	first := max(int(panX/tileSize), 0)
	last := min(int((panX+viewW)/tileSize)+1, d.Cols()-1)
	for row := 0; row < d.Rows(); row++ {
		for col := first; col <= last; col++ {
			code := d.At(row, col)
			if code == leveldata.Empty {
				continue
			}
			x := float64(col)*tileSize - panX
			y := float64(row) * tileSize
			Rect(screen, x, y, tileSize, tileSize, CodeColor(code))
			if code.Enemy() || code == leveldata.Start || code == leveldata.Flag {
				Text(screen, string(rune(code)), face, int(x)+5, int(y)+12, cfg.PalBlack)
			}
		}
	}
}

// Overworld draws the 8x8 map offset by the pan.
func Overworld(screen *ebiten.Image, ow *leveldata.Overworld, panX, panY, tileSize float64) {
	face := fonts.Small.Get()
	for r := range ow {
		for c := range ow[r] {
			t := ow[r][c]
			x := float64(c)*tileSize - panX
			y := float64(r)*tileSize - panY
			Rect(screen, x, y, tileSize-1, tileSize-1, OverworldColor(t.Type))
			if t.Type == leveldata.TileLevel && t.Level != nil {
				Text(screen, *t.Level, face, int(x)+2, int(y)+int(tileSize)/2+4, cfg.PalBlack)
			}
		}
	}
}

// Palette draws a row of swatches along the bottom edge and outlines the
// selected one.
func Palette(screen *ebiten.Image, colors []int, selected int) {
	y := float64(screen.Bounds().Dy() - paletteBottom)
	for i, idx := range colors {
		x := float64(paletteInset + i*swatchSpacing)
		if i == selected {
			Rect(screen, x-2, y-2, swatchSize+4, swatchSize+4, cfg.PalSkin)
		}
		Rect(screen, x, y, swatchSize, swatchSize, idx)
	}
}
