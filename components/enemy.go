package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	// Direction is the patrol heading, -1 left or 1 right.
	Direction float64
	Speed     float64

	// Shell marks the koopa profile. It only changes how the enemy is drawn.
	Shell bool

	SwimPhase float64

	AnimTimer float64
	Frame     int
}

var Enemy = donburi.NewComponentType[EnemyData]()
