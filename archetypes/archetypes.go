package archetypes

import (
	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Session,
		components.Input,
		components.Audio,
		components.Settings,
		components.Banner,
	)
	Overlay = newArchetype(
		tags.Overlay,
		components.Overlay,
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
