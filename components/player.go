package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Invincible float64 // seconds of damage immunity left
	WalkTimer  float64
	Frame      int // walk animation frame, 0-2
}

var Player = donburi.NewComponentType[PlayerData]()

// Visible reports whether the invincibility flicker currently shows the player.
func (p *PlayerData) Visible(flickerRate float64) bool {
	if p.Invincible <= 0 {
		return true
	}
	return int(p.Invincible*flickerRate)%2 != 0
}
