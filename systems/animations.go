package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateAnimations advances every animation by one tick and delivers the
// completion edge of finished one-shots to the player's controller.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		anim.CurrentAnimation.Update()

		if !anim.CurrentAnimation.TakeCompleted() || !e.HasComponent(components.Player) {
			return
		}
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}
		if !player.Controller.Complete(anim.CurrentKey) {
			logger.System("animations").Debug("ignored stale completion",
				zap.Stringer("animation", anim.CurrentKey),
				zap.Stringer("current", player.Controller.State().Current))
		}
	})
}
