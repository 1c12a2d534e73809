package ui

import (
	"image/color"

	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuItem is one button of a pause menu.
type MenuItem struct {
	Label   string
	OnClick func()
}

// Menu is a modal column of buttons with a status line underneath, used by
// the editors.
type Menu struct {
	UI *ebitenui.UI

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenu builds a centered menu with one button per item.
func NewMenu(title string, items []MenuItem) *Menu {
	m := &Menu{
		titleFace:  fonts.UIFace(18),
		normalFace: fonts.UIFace(12),
		smallFace:  fonts.UIFace(10),
	}
	m.build(title, items)
	return m
}

func (m *Menu) build(title string, items []MenuItem) {
	// translucent backdrop so the editor stays visible behind the menu
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Color(cfg.PalBlack))),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &m.titleFace, &widget.LabelColor{
			Idle: cfg.Color(cfg.PalSkin),
		}),
	))

	for _, item := range items {
		onClick := item.OnClick
		content.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(180, 24),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(item.Label, &m.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}

	m.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &m.smallFace, &widget.LabelColor{
			Idle: cfg.Color(cfg.PalSkin),
		}),
	)
	content.AddChild(m.statusLabel)

	root.AddChild(content)
	m.UI = &ebitenui.UI{Container: root}
}

// SetStatus replaces the status line.
func (m *Menu) SetStatus(s string) {
	m.statusLabel.Label = s
}

func (m *Menu) Update() {
	m.UI.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Color(cfg.PalRed)),
		Hover:    image.NewNineSliceColor(color.RGBA{255, 120, 120, 255}),
		Pressed:  image.NewNineSliceColor(cfg.Color(cfg.PalBrown)),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
