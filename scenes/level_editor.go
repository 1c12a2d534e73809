package scenes

import (
	"errors"
	"fmt"
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

// LevelEditorScene edits one level's tiles.
type LevelEditorScene struct {
	ecs  *ecs.ECS
	ctx  *Context
	once sync.Once
	keys keys

	id       string
	theme    cfg.Theme
	draft    *leveldata.Draft
	editor   *donburi.Entry
	menu     *ui.Menu
	menuOpen bool
	dt       float64
}

// NewLevelEditorScene opens id, starting from its saved, embedded or
// generated grid.
func NewLevelEditorScene(ctx *Context, id string) (*LevelEditorScene, error) {
	world, _, err := leveldata.ParseLevelID(id)
	if err != nil {
		return nil, err
	}
	var draft *leveldata.Draft
	g, err := ctx.Levels.Get(id)
	if err != nil {
		log.Printf("Warning: Could not open level %s, starting blank: %v", id, err)
		draft = leveldata.NewDraft(cfg.Level.Rows, cfg.Level.Cols, cfg.Physics.TileSize)
	} else {
		draft = g.Edit()
	}
	return &LevelEditorScene{
		ctx:   ctx,
		id:    id,
		theme: cfg.ThemeFor(world),
		draft: draft,
	}, nil
}

func (ls *LevelEditorScene) ID() cfg.ModeID { return cfg.ModeLevelEditor }

func (ls *LevelEditorScene) Update(dt float64) {
	ls.once.Do(ls.configure)
	ls.dt = dt
	ls.ecs.Update()
}

func (ls *LevelEditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelEditorScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())
	w := ls.ecs.World
	ls.editor = w.Entry(w.Create(components.LevelEditor))
	components.LevelEditor.SetValue(ls.editor, components.LevelEditorData{
		ID:    ls.id,
		Draft: ls.draft,
		Brush: leveldata.Ground,
	})

	ls.menu = ui.NewMenu("LEVEL "+ls.id, []ui.MenuItem{
		{Label: "Save Level", OnClick: ls.save},
		{Label: "Load Level", OnClick: ls.load},
		{Label: "Back to Overworld", OnClick: ls.leave},
	})

	ls.ecs.AddSystem(ls.update)
	ls.ecs.AddRenderer(render.LayerWorld, ls.draw)
}

func (ls *LevelEditorScene) data() *components.LevelEditorData {
	return components.LevelEditor.Get(ls.editor)
}

func (ls *LevelEditorScene) update(_ *ecs.ECS) {
	ls.keys.update(ls.ctx.Input)
	if ls.keys.pressed(cfg.ActionMenuBack) {
		ls.menuOpen = !ls.menuOpen
		return
	}
	if ls.menuOpen {
		ls.menu.Update()
		return
	}

	ed := ls.data()
	if brush, ok := systems.PickBrush(leveldata.Codes, input.Digit()); ok {
		ed.Brush = brush
	}
	if input.TabPressed() {
		systems.NextLevelBrush(ed)
	}

	step := cfg.Editor.LevelPanSpeed * ls.dt * cfg.Physics.TimeScale
	if ls.keys.held(cfg.ActionMenuLeft) {
		systems.PanLevel(ed, -step, cfg.Physics.TileSize, float64(cfg.C.Width))
	}
	if ls.keys.held(cfg.ActionMenuRight) {
		systems.PanLevel(ed, step, cfg.Physics.TileSize, float64(cfg.C.Width))
	}

	mx, my := input.Cursor()
	switch {
	case input.Painting():
		systems.PaintLevel(ed, mx, my, cfg.Physics.TileSize, ed.Brush)
	case input.Erasing():
		systems.PaintLevel(ed, mx, my, cfg.Physics.TileSize, leveldata.Empty)
	}
}

func (ls *LevelEditorScene) setStatus(s string) {
	ls.data().Status = s
	ls.menu.SetStatus(s)
}

func (ls *LevelEditorScene) save() {
	if err := ls.ctx.Levels.Save(ls.id, ls.data().Draft.Build()); err != nil {
		log.Printf("Warning: Could not save level %s: %v", ls.id, err)
		ls.setStatus("Save failed")
		return
	}
	ls.setStatus(fmt.Sprintf("Saved %s", ls.id))
}

func (ls *LevelEditorScene) load() {
	g, err := ls.ctx.Levels.Load(ls.id)
	if err != nil {
		if !errors.Is(err, leveldata.ErrNotFound) {
			log.Printf("Warning: Could not load level %s: %v", ls.id, err)
		}
		ls.setStatus("Load failed")
		return
	}
	ed := ls.data()
	ed.Draft = g.Edit()
	systems.PanLevel(ed, 0, cfg.Physics.TileSize, float64(cfg.C.Width))
	ls.setStatus(fmt.Sprintf("Loaded %s", ls.id))
}

func (ls *LevelEditorScene) leave() {
	if err := ls.ctx.Nav.Pop(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (ls *LevelEditorScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	ed := ls.data()
	render.Fill(screen, ls.theme.Sky)
	render.Draft(screen, ed.Draft, ed.PanX, cfg.Physics.TileSize)

	colors := make([]int, len(leveldata.Codes))
	for i, c := range leveldata.Codes {
		colors[i] = render.CodeColor(c)
	}
	face := fonts.HUD.Get()
	w, h := cfg.C.Width, cfg.C.Height
	render.Rect(screen, 0, float64(h-64), float64(w), 64, cfg.PalBlack)
	render.Text(screen, fmt.Sprintf("LEVEL %s  BRUSH %q", ed.ID, rune(ed.Brush)), face, 10, h-48, cfg.PalSkin)
	render.Text(screen, ed.Status, face, w-140, h-48, cfg.PalSkin)
	render.Palette(screen, colors, slices.Index(leveldata.Codes, ed.Brush))

	if ls.menuOpen {
		ls.menu.Draw(screen)
	}
}
