package render

import (
	"github.com/automoto/koopa/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Particles draws firework rockets and fading sparks.
func Particles(e *ecs.ECS, screen *ebiten.Image) {
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Rocket {
			Rect(screen, p.X-1, p.Y, 2, 4, p.Color)
			return
		}
		size := 1 + 2*p.Life
		Rect(screen, p.X-size/2, p.Y-size/2, size, size, p.Color)
	})
}
