package components

import (
	"testing"

	"github.com/automoto/brawler/assets/animations"
	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
)

func newAnimationData() *AnimationData {
	return &AnimationData{
		CurrentKey: cfg.AnimNone,
		Animations: map[cfg.AnimationKey]*animations.Animation{
			cfg.Idle:  animations.NewAnimation([]int{5, 6, 7, 8}, 8, true, 60),
			cfg.Punch: animations.NewAnimation([]int{15, 16, 17, 18, 17, 15}, 12, false, 60),
		},
	}
}

func TestPlaySwitchesAndRestarts(t *testing.T) {
	a := newAnimationData()

	assert.True(t, a.Play(cfg.Idle, false))
	assert.Equal(t, cfg.Idle, a.CurrentKey)

	for i := 0; i < 10; i++ {
		a.CurrentAnimation.Update()
	}
	assert.Equal(t, 1, a.CurrentAnimation.Index())

	// Same key without restart keeps the playhead.
	assert.True(t, a.Play(cfg.Idle, false))
	assert.Equal(t, 1, a.CurrentAnimation.Index())

	assert.True(t, a.Play(cfg.Idle, true))
	assert.Equal(t, 0, a.CurrentAnimation.Index())

	assert.True(t, a.Play(cfg.Punch, false))
	assert.Equal(t, cfg.Punch, a.CurrentKey)
	assert.Equal(t, 15, a.CurrentAnimation.Frame())
}

func TestPlayUnknownKey(t *testing.T) {
	a := newAnimationData()
	a.Play(cfg.Idle, false)

	assert.False(t, a.Play(cfg.Win, true))
	assert.Equal(t, cfg.Idle, a.CurrentKey)
}
