package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/koopa/archetypes"
	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/yohamta/donburi"
)

const (
	rocketChance   = 0.2 // launches per frame
	rocketSpeed    = 3
	sparkCount     = 20
	sparkMinSpeed  = 2
	sparkMaxSpeed  = 5
	sparkGravity   = 0.1
	sparkFadeRate  = 0.02
	rocketMarginX  = 50
	burstHeightDiv = 3 // rockets burst above height/burstHeightDiv
)

var fireworkColors = []int{cfg.PalRed, cfg.PalSkin, cfg.PalBlue}

// UpdateFireworks launches rockets from the bottom edge, bursts them into
// sparks and fades the sparks out.
func UpdateFireworks(w donburi.World, rng *rand.Rand, dt, width, height float64) {
	scale := dt * cfg.Physics.TimeScale

	if rng.Float64() < rocketChance*scale {
		e := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(e, components.ParticleData{
			X:      rocketMarginX + rng.Float64()*(width-2*rocketMarginX),
			Y:      height,
			Life:   1,
			Color:  fireworkColors[rng.Intn(len(fireworkColors))],
			Rocket: true,
		})
	}

	var bursts []components.ParticleData
	var dead []donburi.Entity
	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Rocket {
			p.Y -= rocketSpeed * scale
			if p.Y < height/burstHeightDiv {
				bursts = append(bursts, *p)
				dead = append(dead, e.Entity())
			}
			return
		}

		p.X += p.VX * scale
		p.Y += p.VY * scale
		p.VY += sparkGravity * scale
		p.Life -= sparkFadeRate * scale
		if p.Life <= 0 {
			dead = append(dead, e.Entity())
		}
	})

	for _, entity := range dead {
		w.Remove(entity)
	}
	for _, rocket := range bursts {
		burst(w, rng, rocket)
	}
}

func burst(w donburi.World, rng *rand.Rand, rocket components.ParticleData) {
	for i := 0; i < sparkCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := sparkMinSpeed + rng.Float64()*(sparkMaxSpeed-sparkMinSpeed)
		e := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(e, components.ParticleData{
			X:     rocket.X,
			Y:     rocket.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Color: rocket.Color,
		})
	}
}
