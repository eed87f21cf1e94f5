package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

// CreateSpace builds the collision space over the whole stage and fills it
// with the stage's solids.
func CreateSpace(ecs *ecs.ECS, stage assets.Stage) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(stage.WorldWidth, stage.WorldHeight, spaceCellSize, spaceCellSize))

	for _, s := range stage.Solids {
		CreateWall(ecs, s.X, s.Y, s.Width, s.Height)
	}
	return space
}
