package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances the background redraw fade.
func UpdateTweens(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)
	components.Background.Each(ecs.World, func(e *donburi.Entry) {
		bg := components.Background.Get(e)
		if bg.Fade == nil {
			bg.Alpha = 1
			return
		}
		bg.Alpha, _ = bg.Fade.Update(dt)
	})
}
