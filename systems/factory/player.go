package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y) at scale 1.
func CreatePlayer(ecs *ecs.ECS, x, y float64, sheet string, settings cfg.ControllerSettings) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Animations.Sheet.FrameWidth)
	h := float64(cfg.Animations.Sheet.FrameHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	ctrl := controller.New(controller.Options{
		Speed:      cfg.Player.Speed,
		Settings:   settings,
		Animations: cfg.Animations,
	})
	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Scale:      1,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		CollideWorldBounds: true,
	})

	components.Animation.Set(player, GenerateAnimations(cfg.Animations, sheet))

	return player
}
