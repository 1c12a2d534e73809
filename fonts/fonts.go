package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Menu  FontName = "menu"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	uiSource *text.GoTextFaceSource
)

// LoadDefaults registers the built-in Go fonts under every FontName.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 10); err != nil {
		return err
	}
	if err := LoadFontWithSize(Menu, gobold.TTF, 16); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 24); err != nil {
		return err
	}
	if err := LoadFontWithSize(Small, goregular.TTF, 8); err != nil {
		return err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ui font: %w", err)
	}
	uiSource = src
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// UIFace returns a text/v2 face for ebitenui widgets.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		panic("fonts: LoadDefaults not called")
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

// Width returns the advance of s in face f, in pixels.
func Width(f font.Face, s string) int {
	return font.MeasureString(f, s).Round()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
