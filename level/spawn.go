package level

import (
	"github.com/automoto/koopa/archetypes"
	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/yohamta/donburi"
)

func spawnPlayer(w donburi.World, x, y float64) (*donburi.Entry, error) {
	body, err := components.NewBody(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	if err != nil {
		return nil, err
	}
	e := archetypes.Player.Spawn(w)
	components.Body.SetValue(e, body)
	components.Actor.SetValue(e, components.ActorData{Kind: components.KindPlayer})
	components.Player.SetValue(e, components.PlayerData{})
	return e, nil
}

func spawnEnemy(w donburi.World, kind components.Kind, x, y float64) (*donburi.Entry, error) {
	body, err := components.NewBody(x, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight)
	if err != nil {
		return nil, err
	}
	body.FacingRight = false
	// Markers sit on their floor. Starting grounded keeps a patroller from
	// landing across a tile seam and turning on the spawn frame; with nothing
	// underneath the first step clears the flag and it falls.
	body.OnGround = true

	enemy := components.EnemyData{
		Direction: cfg.DirectionLeft,
		Speed:     cfg.Enemy.PatrolSpeed,
		Shell:     kind == components.KindKoopa,
	}
	if kind.Behavior() == components.BehaviorHazard {
		enemy.Speed = 0
	}

	e := archetypes.Enemy.Spawn(w)
	components.Body.SetValue(e, body)
	components.Actor.SetValue(e, components.ActorData{Kind: kind})
	components.Enemy.SetValue(e, enemy)
	return e, nil
}
