package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera centred on (x, y) with bounds
// (0,0)-(worldWidth, worldHeight).
func CreateCamera(ecs *ecs.ECS, x, y, worldWidth, worldHeight float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
		MaxX:     worldWidth,
		MaxY:     worldHeight,
	})
	return camera
}
