package config

import "image/color"

// Palette is the fixed NES color table indexed by themes.
var Palette = []color.RGBA{
	{84, 84, 84, 255}, {0, 30, 116, 255}, {8, 16, 144, 255}, {48, 0, 136, 255},
	{68, 0, 100, 255}, {92, 0, 48, 255}, {84, 4, 0, 255}, {60, 24, 0, 255},
	{32, 42, 0, 255}, {8, 58, 0, 255}, {0, 64, 0, 255}, {0, 60, 0, 255},
	{0, 50, 60, 255}, {0, 0, 0, 255}, {152, 150, 152, 255}, {8, 76, 196, 255},
	{48, 50, 236, 255}, {92, 30, 228, 255}, {136, 20, 176, 255}, {160, 20, 100, 255},
	{152, 34, 32, 255}, {120, 60, 0, 255}, {84, 90, 0, 255}, {40, 114, 0, 255},
	{8, 124, 0, 255}, {0, 118, 40, 255}, {0, 102, 120, 255}, {0, 0, 0, 255},
	{236, 238, 236, 255}, {76, 154, 236, 255}, {120, 124, 236, 255}, {176, 98, 236, 255},
	{228, 84, 236, 255}, {236, 88, 180, 255}, {236, 106, 100, 255}, {212, 136, 32, 255},
	{160, 170, 0, 255}, {116, 196, 0, 255}, {76, 208, 32, 255}, {56, 204, 108, 255},
	{56, 180, 204, 255}, {60, 60, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

// Color returns palette entry i, clamped to the table.
func Color(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= len(Palette) {
		i = len(Palette) - 1
	}
	return Palette[i]
}

// Named palette slots used across screens.
const (
	PalGrey      = 0
	PalBlack     = 13
	PalGreen     = 14
	PalBlue      = 31
	PalRed       = 33
	PalSkin      = 39
	PalBrown     = 21
	PalWhite     = 28
	PalSky       = 27
)
