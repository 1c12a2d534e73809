package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for the collider space
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
