// Package level runs one level instance: it owns the donburi world holding
// the actors, steps them against the level's colliders and reports how the
// level ended. It does not import ebiten, so it runs headless in tests.
package level

import (
	"fmt"

	"github.com/automoto/koopa/archetypes"
	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/gamemath"
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/automoto/koopa/state"
	"github.com/automoto/koopa/systems"
	"github.com/automoto/koopa/tags"
	"github.com/yohamta/donburi"
)

// Outcome is what a session step asks the mode stack to do.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeNextLevel
	OutcomeWorldComplete
	OutcomeGameComplete
	OutcomeGameOver
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:          "none",
	OutcomeNextLevel:     "next-level",
	OutcomeWorldComplete: "world-complete",
	OutcomeGameComplete:  "game-complete",
	OutcomeGameOver:      "game-over",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

type Session struct {
	world   donburi.World
	play    *state.Play
	stepper *systems.Stepper

	player *donburi.Entry
	level  *donburi.Entry

	viewportWidth float64
}

type Option func(*Session)

// WithQuery replaces the default spatial index with another collider query.
func WithQuery(q systems.ColliderQuery) Option {
	return func(s *Session) {
		s.stepper = systems.NewStepper(q)
	}
}

// WithViewportWidth sets the camera width; it defaults to the window width.
func WithViewportWidth(w float64) Option {
	return func(s *Session) {
		s.viewportWidth = w
	}
}

// NewSession places the player at the grid's start marker and an enemy at
// every enemy marker.
func NewSession(id string, grid *leveldata.Grid, play *state.Play, opts ...Option) (*Session, error) {
	world, lvl, err := leveldata.ParseLevelID(id)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		world:         donburi.NewWorld(),
		play:          play,
		viewportWidth: float64(cfg.C.Width),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.stepper == nil {
		s.stepper = systems.NewStepper(systems.NewSpatialIndex(
			grid.Colliders(), grid.PixelWidth(), grid.PixelHeight(), grid.TileSize()))
	}

	spawnX, spawnY, ok := grid.Spawn()
	if !ok {
		spawnX, spawnY = cfg.Level.DefaultSpawnX, cfg.Level.DefaultSpawnY
	}

	s.level = archetypes.Level.Spawn(s.world)
	components.Level.SetValue(s.level, components.LevelData{
		ID:     id,
		World:  world,
		Level:  lvl,
		Grid:   grid,
		Theme:  cfg.ThemeFor(world),
		Timer:  cfg.Level.TimeLimit,
		SpawnX: spawnX,
		SpawnY: spawnY,
		Bumped: make(map[leveldata.Cell]bool),
	})

	if s.player, err = spawnPlayer(s.world, spawnX, spawnY); err != nil {
		return nil, fmt.Errorf("new session %s: %w", id, err)
	}
	for _, m := range grid.Markers() {
		kind, ok := components.KindForMarker(m.Code)
		if !ok {
			continue
		}
		x := float64(m.Cell.Col) * grid.TileSize()
		y := float64(m.Cell.Row) * grid.TileSize()
		if _, err := spawnEnemy(s.world, kind, x, y); err != nil {
			return nil, fmt.Errorf("new session %s: %w", id, err)
		}
	}

	s.centerCamera()
	return s, nil
}

func (s *Session) World() donburi.World { return s.world }

func (s *Session) Play() *state.Play { return s.play }

func (s *Session) Level() *components.LevelData { return components.Level.Get(s.level) }

func (s *Session) Camera() *components.CameraData { return components.Camera.Get(s.level) }

func (s *Session) PlayerBody() *components.BodyData { return components.Body.Get(s.player) }

func (s *Session) Player() *components.PlayerData { return components.Player.Get(s.player) }

// Update advances the session by dt seconds with the given held actions.
// A non-None outcome is returned exactly once.
func (s *Session) Update(pressed [cfg.ActionCount]bool, dt float64) Outcome {
	input := components.Input.Get(s.level)
	input.Advance(pressed)

	lvl := s.Level()
	switch lvl.Phase {
	case components.PhaseEnding:
		lvl.EndTimer -= dt
		if lvl.EndTimer > 0 {
			return OutcomeNone
		}
		lvl.Phase = components.PhaseDone
		return s.advance()
	case components.PhaseDone:
		return OutcomeNone
	}

	if s.updatePlayer(input, dt) {
		return OutcomeGameOver
	}
	systems.UpdateEnemies(s.world, s.stepper, dt)
	if s.resolveCombat() {
		return OutcomeGameOver
	}

	body := s.PlayerBody()
	systems.FollowCamera(s.Camera(), body.X, s.viewportWidth, lvl.Grid.PixelWidth())

	lvl.Timer -= dt
	if lvl.Timer <= 0 {
		lvl.Timer = cfg.Level.TimeLimit
		if s.loseLife() {
			return OutcomeGameOver
		}
	}

	if body.X > lvl.Grid.PixelWidth()-cfg.Level.EndMargin {
		lvl.Phase = components.PhaseEnding
		lvl.EndTimer = cfg.Level.EndDuration
	}
	return OutcomeNone
}

// updatePlayer moves the player and applies head bumps and falls. It reports
// game over.
func (s *Session) updatePlayer(input *components.InputData, dt float64) bool {
	body := s.PlayerBody()
	systems.ApplyPlayerInput(body, s.Player(), input, dt)
	contacts := s.stepper.Step(body, dt)

	lvl := s.Level()
	for _, c := range contacts.Ceiling {
		cell := lvl.Grid.CellAt(c.X, c.Y)
		if lvl.Grid.At(cell.Row, cell.Col) != leveldata.Question || lvl.Bumped[cell] {
			continue
		}
		lvl.Bumped[cell] = true
		if s.play.Size == state.SizeBig {
			lvl.Coins++
		}
		s.play.BumpQuestion()
	}

	if body.Y > lvl.Grid.PixelHeight() {
		return s.loseLife()
	}
	return false
}

// resolveCombat checks every active enemy once. It reports game over.
func (s *Session) resolveCombat() bool {
	gameOver := false
	tags.Enemy.Each(s.world, func(e *donburi.Entry) {
		if gameOver {
			return
		}
		kind := components.Actor.Get(e).Kind
		switch systems.ResolveCombat(s.PlayerBody(), s.Player(), components.Body.Get(e), kind) {
		case systems.CombatStomp:
			s.play.Score += cfg.Player.StompBonus
		case systems.CombatDamage:
			if !s.play.Hurt() {
				s.Player().Invincible = cfg.Player.InvincibleTime
				return
			}
			gameOver = s.afterLostLife()
		}
	})
	return gameOver
}

// loseLife takes a life outside combat (falling, time out).
func (s *Session) loseLife() bool {
	s.play.LoseLife()
	return s.afterLostLife()
}

func (s *Session) afterLostLife() bool {
	if s.play.GameOver() {
		return true
	}
	s.respawn()
	return false
}

func (s *Session) respawn() {
	lvl := s.Level()
	body := s.PlayerBody()
	body.X, body.Y = lvl.SpawnX, lvl.SpawnY
	body.VX, body.VY = 0, 0
	body.OnGround = false
	s.Player().Invincible = cfg.Player.InvincibleTime
	s.centerCamera()
}

// centerCamera jumps the camera onto the player without easing.
func (s *Session) centerCamera() {
	levelWidth := s.Level().Grid.PixelWidth()
	target := s.PlayerBody().X - s.viewportWidth/2
	s.Camera().X = gamemath.Clamp(target, 0, levelWidth-s.viewportWidth)
}

func (s *Session) advance() Outcome {
	switch s.play.Advance() {
	case state.ProgressNextLevel:
		return OutcomeNextLevel
	case state.ProgressWorldComplete:
		return OutcomeWorldComplete
	}
	return OutcomeGameComplete
}
