package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS, source input.Source) *donburi.Entry {
	entry := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(entry, components.InputData{Source: source})
	return entry
}
