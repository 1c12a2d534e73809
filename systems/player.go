package systems

import (
	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
)

// walkFrameRate is walk animation frames per second.
const walkFrameRate = 10

// ApplyPlayerInput sets the player's velocity for this frame and ticks its
// invincibility window. It runs before the physics step.
func ApplyPlayerInput(b *components.BodyData, p *components.PlayerData, in *components.InputData, dt float64) {
	p.Invincible = max(0, p.Invincible-dt)

	b.VX = 0
	if in.Action(cfg.ActionMoveLeft).Pressed {
		b.VX = -cfg.Player.MoveSpeed
		b.FacingRight = false
	}
	if in.Action(cfg.ActionMoveRight).Pressed {
		b.VX = cfg.Player.MoveSpeed
		b.FacingRight = true
	}

	if in.Action(cfg.ActionJump).JustPressed && b.OnGround {
		b.VY = -cfg.Player.JumpPower
		b.OnGround = false
	}

	if b.VX != 0 && b.OnGround {
		p.WalkTimer += dt
		p.Frame = int(p.WalkTimer*walkFrameRate) % 3
	} else {
		p.WalkTimer = 0
		p.Frame = 0
	}
}

// CombatOutcome is the result of one player/enemy contact check.
type CombatOutcome int

const (
	CombatNone CombatOutcome = iota
	CombatStomp
	CombatDamage
)

func (o CombatOutcome) String() string {
	switch o {
	case CombatStomp:
		return "stomp"
	case CombatDamage:
		return "damage"
	}
	return "none"
}

// ResolveCombat checks one enemy against the player after both have moved.
// A stomp deactivates the enemy and bounces the player. Damage is only
// reported; the caller owns lives and size.
func ResolveCombat(pb *components.BodyData, p *components.PlayerData, eb *components.BodyData, kind components.Kind) CombatOutcome {
	if !pb.Active || !eb.Active || !pb.Rect().Overlaps(eb.Rect()) {
		return CombatNone
	}

	if kind.Stompable() && pb.VY > 0 && pb.Bottom()-cfg.Player.StompTolerance < eb.Y {
		eb.Active = false
		pb.VY = -cfg.Player.JumpPower / 2
		pb.OnGround = false
		return CombatStomp
	}

	if p.Invincible > 0 {
		return CombatNone
	}
	return CombatDamage
}
