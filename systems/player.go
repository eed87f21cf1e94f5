package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlayer runs one controller tick from the sampled intent and applies
// the command to the animation player and the body.
func UpdatePlayer(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}

		cmd := player.Controller.Tick(in.Intent)
		player.LastCommand = cmd

		physics := components.Physics.Get(e)
		physics.VelocityX = cmd.VelocityX
		physics.FlipX = cmd.FlipX

		if cmd.HasPlay {
			anim := components.Animation.Get(e)
			if !anim.Play(cmd.Play, cmd.Restart) {
				logger.System("player").Warn("animation not defined",
					zap.Stringer("animation", cmd.Play))
			}
		}

		checkLockWatchdog(e, player)
	})
}

// checkLockWatchdog reports a lock that outlived its animation. The lock is
// left in place; only the completion edge releases it.
func checkLockWatchdog(e *donburi.Entry, player *components.PlayerData) {
	state := player.Controller.State()
	if !state.Locked {
		player.LockWarned = false
		return
	}
	if player.LockWarned {
		return
	}

	anim := components.Animation.Get(e)
	limit := int(cfg.Player.LockWatchdogSeconds * float64(cfg.C.TPS))
	if anim.CurrentAnimation != nil {
		limit += anim.CurrentAnimation.Duration()
	}
	if player.Controller.LockedTicks() <= limit {
		return
	}

	player.LockWarned = true
	logger.System("player").Warn("animation lock outlived its animation",
		zap.Stringer("animation", state.Current),
		zap.Int("lockedTicks", player.Controller.LockedTicks()),
		zap.Int("limitTicks", limit))
}
