package archetypes

import (
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Renderable = newArchetype(
		components.Renderable,
	)
	Deck = newArchetype(
		components.Deck,
	)
	Playback = newArchetype(
		components.Playback,
	)
	Textures = newArchetype(
		components.Textures,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
