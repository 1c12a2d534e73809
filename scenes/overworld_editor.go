package scenes

import (
	"errors"
	"log"
	"slices"
	"sync"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/fonts"
	"github.com/automoto/koopa/input"
	"github.com/automoto/koopa/render"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/systems"
	"github.com/automoto/koopa/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverworldEditorScene paints the 8x8 overworld map.
type OverworldEditorScene struct {
	ecs  *ecs.ECS
	ctx  *Context
	once sync.Once
	keys keys

	editor   *donburi.Entry
	menu     *ui.Menu
	menuOpen bool
	dt       float64
}

func NewOverworldEditorScene(ctx *Context) *OverworldEditorScene {
	return &OverworldEditorScene{ctx: ctx}
}

func (es *OverworldEditorScene) ID() cfg.ModeID { return cfg.ModeOverworldEditor }

func (es *OverworldEditorScene) Update(dt float64) {
	es.once.Do(es.configure)
	es.dt = dt
	es.ecs.Update()
}

func (es *OverworldEditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *OverworldEditorScene) Resume() {
	es.keys.reset()
	es.menuOpen = false
}

func (es *OverworldEditorScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())
	w := es.ecs.World
	es.editor = w.Entry(w.Create(components.OverworldEditor))
	components.OverworldEditor.SetValue(es.editor, components.OverworldEditorData{
		Brush: leveldata.TileGrass,
	})

	es.menu = ui.NewMenu("OVERWORLD EDITOR", []ui.MenuItem{
		{Label: "Save Overworld", OnClick: es.save},
		{Label: "Load Overworld", OnClick: es.load},
		{Label: "Level Editor", OnClick: es.openLevelEditor},
		{Label: "Return to Title", OnClick: es.leave},
	})

	es.ecs.AddSystem(es.update)
	es.ecs.AddRenderer(render.LayerWorld, es.draw)
}

func (es *OverworldEditorScene) data() *components.OverworldEditorData {
	return components.OverworldEditor.Get(es.editor)
}

func (es *OverworldEditorScene) update(_ *ecs.ECS) {
	es.keys.update(es.ctx.Input)
	if es.keys.pressed(cfg.ActionMenuBack) {
		es.menuOpen = !es.menuOpen
		return
	}
	if es.menuOpen {
		es.menu.Update()
		return
	}

	ed := es.data()
	if brush, ok := systems.PickBrush(leveldata.OverworldTypes, input.Digit()); ok {
		ed.Brush = brush
	}

	step := cfg.Editor.OverworldPanSpeed * es.dt * cfg.Physics.TimeScale
	var dx, dy float64
	if es.keys.held(cfg.ActionMenuLeft) {
		dx -= step
	}
	if es.keys.held(cfg.ActionMenuRight) {
		dx += step
	}
	if es.keys.held(cfg.ActionMenuUp) {
		dy -= step
	}
	if es.keys.held(cfg.ActionMenuDown) {
		dy += step
	}
	extent := float64(leveldata.OverworldSize * cfg.Editor.OverworldTileSize)
	systems.PanOverworld(ed, dx, dy, extent, extent)

	mx, my := input.Cursor()
	tile := float64(cfg.Editor.OverworldTileSize)
	switch {
	case input.Painting():
		systems.PaintOverworld(es.ctx.Play.Overworld, ed, mx, my, tile, cfg.Editor.DefaultLevelID, false)
	case input.Erasing():
		systems.PaintOverworld(es.ctx.Play.Overworld, ed, mx, my, tile, cfg.Editor.DefaultLevelID, true)
	}
}

func (es *OverworldEditorScene) setStatus(s string) {
	es.data().Status = s
	es.menu.SetStatus(s)
}

func (es *OverworldEditorScene) save() {
	if err := leveldata.SaveOverworld(es.ctx.Files, es.ctx.Play.Overworld); err != nil {
		log.Printf("Warning: Could not save overworld: %v", err)
		es.setStatus("Save failed")
		return
	}
	es.setStatus("Overworld saved")
}

func (es *OverworldEditorScene) load() {
	ow, err := leveldata.LoadOverworld(es.ctx.Files)
	if err != nil {
		if !errors.Is(err, leveldata.ErrNotFound) {
			log.Printf("Warning: Could not load overworld: %v", err)
		}
		es.setStatus("Load failed")
		return
	}
	*es.ctx.Play.Overworld = *ow
	es.setStatus("Overworld loaded")
}

func (es *OverworldEditorScene) openLevelEditor() {
	id, ok := es.ctx.Play.Overworld.FirstLevel()
	if !ok {
		id = cfg.Editor.DefaultLevelID
	}
	next, err := NewLevelEditorScene(es.ctx, id)
	if err != nil {
		log.Printf("Warning: %v", err)
		es.setStatus("Cannot edit " + id)
		return
	}
	if err := es.ctx.Nav.Push(next); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (es *OverworldEditorScene) leave() {
	if err := es.ctx.Nav.Pop(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (es *OverworldEditorScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	ed := es.data()
	render.Fill(screen, cfg.PalBlack)
	render.Overworld(screen, es.ctx.Play.Overworld, ed.PanX, ed.PanY, float64(cfg.Editor.OverworldTileSize))

	colors := make([]int, len(leveldata.OverworldTypes))
	for i, t := range leveldata.OverworldTypes {
		colors[i] = render.OverworldColor(t)
	}
	render.Palette(screen, colors, slices.Index(leveldata.OverworldTypes, ed.Brush))

	face := fonts.HUD.Get()
	w, h := cfg.C.Width, cfg.C.Height
	render.Text(screen, "BRUSH: "+ed.Brush, face, w-160, 20, cfg.PalSkin)
	render.Text(screen, ed.Status, face, w-160, 40, cfg.PalSkin)
	render.Text(screen, "1-9 BRUSH  LMB PAINT  RMB CLEAR  ESC MENU", face, 10, h-40, cfg.PalGrey)

	if es.menuOpen {
		es.menu.Draw(screen)
	}
}
