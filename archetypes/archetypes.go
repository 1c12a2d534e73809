package archetypes

import (
	"github.com/automoto/koopa/components"
	"github.com/automoto/koopa/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Body,
		components.Player,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Body,
		components.Enemy,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Camera,
		components.Input,
	)
	Particle = newArchetype(
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
