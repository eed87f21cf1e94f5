package factory

import (
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
)

// GenerateAnimations builds the animation player for a sprite sheet from a
// validated definition set. It starts on idle.
func GenerateAnimations(set *cfg.AnimationSet, sheet string) *components.AnimationData {
	animData := &components.AnimationData{
		Animations:  make(map[cfg.AnimationKey]*animations.Animation, len(set.Defs)),
		Sheet:       sheet,
		FrameWidth:  set.Sheet.FrameWidth,
		FrameHeight: set.Sheet.FrameHeight,
		Columns:     set.Sheet.Columns,
		CurrentKey:  cfg.AnimNone,
	}

	for key, def := range set.Defs {
		animData.Animations[key] = animations.NewAnimation(def.Frames, def.FPS, def.Loop, cfg.C.TPS)
	}
	animData.Play(cfg.Idle, true)

	return animData
}
