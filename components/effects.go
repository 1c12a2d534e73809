package components

import "github.com/yohamta/donburi"

// ParticleData is one firework rocket or spark. Velocities are per 60Hz
// frame.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at birth, removed at 0
	Color  int     // palette index
	Rocket bool    // rising shell that bursts into sparks
}

var Particle = donburi.NewComponentType[ParticleData]()
