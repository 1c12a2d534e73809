package components

import (
	"github.com/yohamta/donburi"
)

type CameraData struct {
	X float64 // left edge of the viewport in world units
}

var Camera = donburi.NewComponentType[CameraData]()
