package systems

import (
	"math"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/gamemath"
	"github.com/automoto/koopa/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies advances every active enemy in world by one step.
func UpdateEnemies(w donburi.World, s *Stepper, dt float64) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.Active {
			return
		}
		actor := components.Actor.Get(e)
		enemy := components.Enemy.Get(e)
		UpdateEnemy(body, enemy, actor.Kind, s, dt)
	})
}

// UpdateEnemy dispatches on the kind's behavior.
func UpdateEnemy(b *components.BodyData, e *components.EnemyData, kind components.Kind, s *Stepper, dt float64) {
	switch kind.Behavior() {
	case components.BehaviorPatroller:
		updatePatroller(b, e, s, dt)
	case components.BehaviorSwimmer:
		updateSwimmer(b, e, s, dt)
	case components.BehaviorHazard:
		b.VX, b.VY = 0, 0
	}
	animateEnemy(e, dt)
}

func updatePatroller(b *components.BodyData, e *components.EnemyData, s *Stepper, dt float64) {
	b.VX = e.Direction * e.Speed
	contacts := s.Step(b, dt)

	switch {
	case contacts.HitWall:
		e.Direction = -e.Direction
	case b.OnGround && !s.Solid(ledgeProbe(b, e.Direction)):
		e.Direction = -e.Direction
	}
	b.FacingRight = e.Direction > 0
}

// ledgeProbe is a one-unit-wide box just past the leading edge, reaching one
// body height below the feet.
func ledgeProbe(b *components.BodyData, direction float64) gamemath.Rect {
	x := b.X - 1
	if direction > 0 {
		x = b.Right()
	}
	return gamemath.Rect{X: x, Y: b.Bottom(), W: 1, H: b.H}
}

func updateSwimmer(b *components.BodyData, e *components.EnemyData, s *Stepper, dt float64) {
	b.VX = e.Direction * e.Speed
	e.SwimPhase += dt
	// the bob is an offset on top of gravity, not a velocity
	b.Y += cfg.Enemy.SwimAmplitude * math.Sin(e.SwimPhase*cfg.Enemy.SwimFrequency) * dt * cfg.Physics.TimeScale

	if s.Step(b, dt).HitWall {
		e.Direction = -e.Direction
	}
	b.OnGround = false
	b.FacingRight = e.Direction > 0
}

func animateEnemy(e *components.EnemyData, dt float64) {
	e.AnimTimer += dt
	if e.AnimTimer >= cfg.Enemy.AnimationRate {
		e.AnimTimer -= cfg.Enemy.AnimationRate
		e.Frame = (e.Frame + 1) % 2
	}
}
