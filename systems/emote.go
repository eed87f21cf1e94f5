package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/input"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// tapReader reports fresh taps. Replaced in tests.
var (
	tapReader input.TapReader = &input.EbitenTaps{}
	taps      []input.Pointer
)

// UpdateEmotes plays the next emote for each tap outside the control strip.
// Taps while a one-shot holds the lock are dropped and do not advance the
// cycle.
func UpdateEmotes(ecs *ecs.ECS) {
	taps = tapReader.AppendTaps(taps[:0])
	if len(taps) == 0 {
		return
	}
	_, viewHeight := viewportSize(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}
		emotes := player.Controller.Settings().Emotes
		if len(emotes) == 0 {
			return
		}

		for _, tap := range taps {
			if input.InControlStrip(tap.Y, viewHeight) {
				continue
			}
			key := emotes[player.EmoteIndex%len(emotes)]
			if !player.Controller.Emote(key) {
				logger.System("emote").Debug("emote refused",
					zap.Stringer("emote", key),
					zap.Stringer("current", player.Controller.State().Current))
				continue
			}
			player.EmoteIndex = (player.EmoteIndex + 1) % len(emotes)
		}
	})
}
