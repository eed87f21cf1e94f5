package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage spawns the stage singleton. The viewport starts unapplied so
// the first tick fits the scene.
func CreateStage(ecs *ecs.ECS, stage assets.Stage, viewWidth, viewHeight float64) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{Stage: stage})
	components.Viewport.SetValue(entry, components.ViewportData{
		Width:  viewWidth,
		Height: viewHeight,
	})
	return entry
}
