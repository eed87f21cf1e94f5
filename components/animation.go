package components

import (
	"github.com/automoto/brawler/assets/animations"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the player's animation player: one Animation per key over
// a single sprite sheet.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentKey       cfg.AnimationKey
	Animations       map[cfg.AnimationKey]*animations.Animation
	Sheet            string
	FrameWidth       int
	FrameHeight      int
	Columns          int
}

// Play switches to key. When key is already current, the animation restarts
// only if restartIfSame is set. Unknown keys are ignored.
func (a *AnimationData) Play(key cfg.AnimationKey, restartIfSame bool) bool {
	anim, ok := a.Animations[key]
	if !ok {
		return false
	}
	if a.CurrentKey == key && a.CurrentAnimation == anim && !restartIfSame {
		return true
	}
	a.CurrentAnimation = anim
	a.CurrentKey = key
	anim.Restart()
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
