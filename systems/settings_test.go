package systems

import (
	"os"
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleAndToggleHelpers(t *testing.T) {
	s := DefaultSettings()

	CycleAttackMode(&s)
	assert.Equal(t, cfg.AttackFixed, s.Controller.AttackMode)
	CycleAttackMode(&s)
	assert.Equal(t, cfg.AttackRandom, s.Controller.AttackMode)

	CycleInputMode(&s)
	assert.Equal(t, cfg.InputModeKeyboard, s.InputMode)
	CycleInputMode(&s)
	assert.Equal(t, cfg.InputModeTouch, s.InputMode)
	CycleInputMode(&s)
	assert.Equal(t, cfg.InputModeAuto, s.InputMode)

	mirror := s.Controller.MirrorLeft
	ToggleMirrorLeft(&s)
	assert.Equal(t, !mirror, s.Controller.MirrorLeft)
	assert.Equal(t, "Flip when facing right", MirrorLabel(&s))

	ToggleResumeLast(&s)
	assert.True(t, s.Controller.ResumeLast)
	ToggleFullscreen(&s)
	assert.True(t, s.Fullscreen)

	assert.Equal(t, "On", OnOff(true))
	assert.Equal(t, "Off", OnOff(false))
}

func TestDefaultSettingsDoNotAlias(t *testing.T) {
	s := DefaultSettings()
	s.Controller.AttackSet[0] = cfg.Die
	assert.NotEqual(t, cfg.Die, cfg.Controller.AttackSet[0])
}

func TestApplySettingsUpdatesControllerAndSource(t *testing.T) {
	w := newTestWorld(t, testStage(), 1280, 720)
	var fullscreen []bool
	setFullscreen = func(v bool) { fullscreen = append(fullscreen, v) }

	s := GetOrCreateSettings(w.ecs)
	s.InputMode = cfg.InputModeTouch
	s.Controller.ResumeLast = true
	s.Fullscreen = true
	ApplySettings(w.ecs)

	assert.True(t, w.controller().Settings().ResumeLast)
	in := getOrCreateInput(w.ecs)
	assert.Equal(t, "touch", in.Source.Name())
	assert.Equal(t, []bool{true}, fullscreen)
	assert.True(t, s.Dirty)

	s.InputMode = cfg.InputModeKeyboard
	ApplySettings(w.ecs)
	assert.Equal(t, "keyboard", in.Source.Name())
}

func TestReloadAnimations(t *testing.T) {
	prev := cfg.Animations
	t.Cleanup(func() { cfg.Animations = prev })

	w := newTestWorld(t, testStage(), 1280, 720)
	w.tick()

	err := ReloadAnimations(w.ecs, []byte("sheet: {frameWidth: 0}"))
	var cfgErr *cfg.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Same(t, prev, cfg.Animations, "invalid data keeps the current set")

	data, err := os.ReadFile("../config/animations.yaml")
	require.NoError(t, err)

	w.source.intent.Action = true
	w.tick()
	require.True(t, w.controller().State().Locked)

	require.NoError(t, ReloadAnimations(w.ecs, data))
	assert.NotSame(t, prev, cfg.Animations)
	assert.False(t, w.controller().State().Locked, "controller reset to idle")

	entry := firstPlayer(w.ecs)
	assert.Equal(t, cfg.Idle, components.Animation.Get(entry).CurrentKey)

	vpEntry, _ := components.Viewport.First(w.ecs.World)
	assert.Zero(t, components.Viewport.Get(vpEntry).Applied)
	w.source.intent.Action = false
	w.tick()
	assert.Equal(t, 720, components.Viewport.Get(vpEntry).Applied)
}

func TestUpdateReloadWithoutWatcher(t *testing.T) {
	w := newTestWorld(t, testStage(), 1280, 720)
	assert.NotPanics(t, func() { UpdateReload(w.ecs) })
}
