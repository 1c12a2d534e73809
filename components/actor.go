package components

import (
	"github.com/automoto/koopa/shared/leveldata"
	"github.com/yohamta/donburi"
)

// Kind identifies an actor's behavior variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindGoomba
	KindKoopa
	KindFish
	KindSpike
)

var kindNames = map[Kind]string{
	KindPlayer: "player",
	KindGoomba: "goomba",
	KindKoopa:  "koopa",
	KindFish:   "fish",
	KindSpike:  "spike",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Behavior is the update rule family a kind belongs to.
type Behavior int

const (
	BehaviorPlayer Behavior = iota
	BehaviorPatroller
	BehaviorSwimmer
	BehaviorHazard
)

// Behavior maps a kind to its update rule.
func (k Kind) Behavior() Behavior {
	switch k {
	case KindGoomba, KindKoopa:
		return BehaviorPatroller
	case KindFish:
		return BehaviorSwimmer
	case KindSpike:
		return BehaviorHazard
	}
	return BehaviorPlayer
}

// Stompable reports whether the player can defeat this kind from above.
func (k Kind) Stompable() bool {
	return k.Behavior() != BehaviorHazard && k != KindPlayer
}

// KindForMarker maps an enemy marker to a kind.
func KindForMarker(c leveldata.Code) (Kind, bool) {
	switch c {
	case leveldata.Goomba:
		return KindGoomba, true
	case leveldata.Koopa:
		return KindKoopa, true
	case leveldata.Fish:
		return KindFish, true
	case leveldata.Spike:
		return KindSpike, true
	}
	return 0, false
}

type ActorData struct {
	Kind Kind
}

var Actor = donburi.NewComponentType[ActorData]()
